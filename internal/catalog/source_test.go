//go:build !integration

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (s *stubLoader) Load(context.Context) ([]byte, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.err
}

func (s *stubLoader) Location() string { return "stub" }

func (s *stubLoader) set(data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.err = data, err
}

func fixtureBytes(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "feed.json"))
	require.NoError(t, err)
	return data
}

func TestSource_CurrentBeforeLoad(t *testing.T) {
	s := NewSource(&stubLoader{})

	_, err := s.Current()

	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.False(t, s.Loaded())
}

func TestSource_Reload(t *testing.T) {
	loader := &stubLoader{data: fixtureBytes(t)}
	s := NewSource(loader)

	c, err := s.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, c, current)
}

func TestSource_FailedReloadKeepsPrevious(t *testing.T) {
	loader := &stubLoader{data: fixtureBytes(t)}
	s := NewSource(loader)
	first, err := s.Reload(context.Background())
	require.NoError(t, err)

	loader.set(nil, errors.New("disk gone"))
	_, err = s.Reload(context.Background())
	require.Error(t, err)

	loader.set([]byte(`{"categories": []}`), nil)
	_, err = s.Reload(context.Background())
	require.ErrorIs(t, err, ErrEmptyFeed)

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, first, current)
}

func TestSource_ConcurrentReloadsShareOneLoad(t *testing.T) {
	loader := &stubLoader{data: fixtureBytes(t), gate: make(chan struct{})}
	s := NewSource(loader)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*Catalog, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := s.Reload(context.Background())
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}

	require.Eventually(t, func() bool { return loader.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	close(loader.gate)
	wg.Wait()

	assert.LessOrEqual(t, loader.calls.Load(), int32(callers))
	current, _ := s.Current()
	for _, c := range results {
		require.NotNil(t, c)
	}
	assert.NotNil(t, current)
}
