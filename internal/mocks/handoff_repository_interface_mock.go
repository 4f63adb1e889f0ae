// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockHandoffRepositoryInterface struct {
	mock.Mock
}

func (m *MockHandoffRepositoryInterface) Create(ctx context.Context, doc *repository.HandoffDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockHandoffRepositoryInterface) Query(ctx context.Context, opts repository.HandoffQueryOptions) ([]*repository.HandoffDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.HandoffDocument), args.Error(1)
}

func (m *MockHandoffRepositoryInterface) Count(ctx context.Context, opts repository.HandoffQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
