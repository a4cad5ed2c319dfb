package definition_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThiRaBrTNK/Radarr/pkg/definition"
)

type countingLoader struct {
	calls atomic.Int32
	fail  atomic.Bool
	gate  chan struct{}
}

func (l *countingLoader) Load(_ context.Context, src definition.Source) (definition.Definition, error) {
	l.calls.Add(1)
	if l.gate != nil {
		<-l.gate
	}
	if l.fail.Load() {
		return definition.Definition{}, errors.New("boom")
	}
	return definition.Definition{ID: src.Location()}, nil
}

func TestCache_MemoisesSuccessfulLoads(t *testing.T) {
	inner := &countingLoader{}
	cache := definition.NewCache(inner)
	src := definition.SourceFromFile("defs/a.yml")

	for range 3 {
		def, err := cache.Load(context.Background(), src)
		require.NoError(t, err)
		require.Equal(t, "defs/a.yml", def.ID)
	}
	require.EqualValues(t, 1, inner.calls.Load())
	require.Equal(t, 1, cache.Len())

	cache.Forget(src)
	_, err := cache.Load(context.Background(), src)
	require.NoError(t, err)
	require.EqualValues(t, 2, inner.calls.Load())

	cache.Reset()
	require.Zero(t, cache.Len())
}

func TestCache_DoesNotCacheFailures(t *testing.T) {
	inner := &countingLoader{}
	inner.fail.Store(true)
	cache := definition.NewCache(inner)
	src := definition.SourceFromFS("x.yml")

	_, err := cache.Load(context.Background(), src)
	require.Error(t, err)
	require.Zero(t, cache.Len())

	inner.fail.Store(false)
	_, err = cache.Load(context.Background(), src)
	require.NoError(t, err)
	require.EqualValues(t, 2, inner.calls.Load())
}

func TestCache_SharesConcurrentLoads(t *testing.T) {
	inner := &countingLoader{gate: make(chan struct{})}
	cache := definition.NewCache(inner)
	src := definition.SourceFromFile("shared.yml")

	const workers = 8
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	started.Add(workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			def, err := cache.Load(context.Background(), src)
			assert.NoError(t, err)
			assert.Equal(t, "shared.yml", def.ID)
		}()
	}
	started.Wait()
	close(inner.gate)
	wg.Wait()

	require.LessOrEqual(t, inner.calls.Load(), int32(workers))
	require.Equal(t, 1, cache.Len())
}

func TestNewCache_PanicsWithoutLoader(t *testing.T) {
	require.Panics(t, func() { definition.NewCache(nil) })
}
