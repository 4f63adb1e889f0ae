//go:build !integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/mary-storefront/internal/circuitbreaker"
	"github.com/guttosm/mary-storefront/internal/mocks"
	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "carts-test",
	})
}

func TestCartStateRepositoryWithCircuitBreaker_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *mocks.MockCartStateRepositoryInterface)
		expected  []byte
		expectErr error
	}{
		{
			name: "returns stored state",
			setup: func(m *mocks.MockCartStateRepositoryInterface) {
				m.On("Get", mock.Anything, "k").Return([]byte(`{"nextId":2}`), nil)
			},
			expected: []byte(`{"nextId":2}`),
		},
		{
			name: "passes not found through",
			setup: func(m *mocks.MockCartStateRepositoryInterface) {
				m.On("Get", mock.Anything, "k").Return(nil, repository.ErrCartStateNotFound)
			},
			expectErr: repository.ErrCartStateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.MockCartStateRepositoryInterface)
			tt.setup(m)
			r := repository.NewCartStateRepositoryWithCircuitBreaker(m, newBreaker())

			data, err := r.Get(context.Background(), "k")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, data)
			m.AssertExpectations(t)
		})
	}
}

func TestCartStateRepositoryWithCircuitBreaker_NotFoundDoesNotTrip(t *testing.T) {
	m := new(mocks.MockCartStateRepositoryInterface)
	m.On("Get", mock.Anything, "k").Return(nil, repository.ErrCartStateNotFound)
	r := repository.NewCartStateRepositoryWithCircuitBreaker(m, newBreaker())

	for i := 0; i < 5; i++ {
		_, _ = r.Get(context.Background(), "k")
	}

	assert.Equal(t, circuitbreaker.StateClosed, r.GetCircuitBreaker().State())
}

func TestCartStateRepositoryWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	m := new(mocks.MockCartStateRepositoryInterface)
	boom := errors.New("connection reset")
	m.On("Put", mock.Anything, "k", mock.Anything).Return(boom).Times(2)
	r := repository.NewCartStateRepositoryWithCircuitBreaker(m, newBreaker())

	assert.ErrorIs(t, r.Put(context.Background(), "k", []byte("{}")), boom)
	assert.ErrorIs(t, r.Put(context.Background(), "k", []byte("{}")), boom)

	assert.ErrorIs(t, r.Put(context.Background(), "k", []byte("{}")), circuitbreaker.ErrCircuitOpen)
	_, err := r.Get(context.Background(), "k")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.ErrorIs(t, r.Delete(context.Background(), "k"), circuitbreaker.ErrCircuitOpen)
	m.AssertExpectations(t)
}

func TestHandoffRepositoryWithCircuitBreaker(t *testing.T) {
	t.Run("create passes through", func(t *testing.T) {
		m := new(mocks.MockHandoffRepositoryInterface)
		doc := &repository.HandoffDocument{SessionID: "s"}
		m.On("Create", mock.Anything, doc).Return(nil).Once()
		r := repository.NewHandoffRepositoryWithCircuitBreaker(m, newBreaker())

		assert.NoError(t, r.Create(context.Background(), doc))
		m.AssertExpectations(t)
	})

	t.Run("create is dropped while open", func(t *testing.T) {
		m := new(mocks.MockHandoffRepositoryInterface)
		m.On("Create", mock.Anything, mock.Anything).Return(errors.New("down")).Times(2)
		r := repository.NewHandoffRepositoryWithCircuitBreaker(m, newBreaker())
		doc := &repository.HandoffDocument{}

		assert.Error(t, r.Create(context.Background(), doc))
		assert.Error(t, r.Create(context.Background(), doc))
		assert.NoError(t, r.Create(context.Background(), doc))
		m.AssertExpectations(t)
	})

	t.Run("query and count", func(t *testing.T) {
		m := new(mocks.MockHandoffRepositoryInterface)
		opts := repository.HandoffQueryOptions{Limit: 10}
		docs := []*repository.HandoffDocument{{SessionID: "a"}}
		m.On("Query", mock.Anything, opts).Return(docs, nil)
		m.On("Count", mock.Anything, opts).Return(int64(1), nil)
		r := repository.NewHandoffRepositoryWithCircuitBreaker(m, newBreaker())

		got, err := r.Query(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, docs, got)

		n, err := r.Count(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
