package throttle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_MantemOrdemEContemFalhas(t *testing.T) {
	items := []int{1, 2, 3, 4}
	errBoom := errors.New("boom")

	results := Map(context.Background(), items, Options{Concurrency: 1}, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errBoom
		}
		if n == 3 {
			panic("unexpected")
		}
		return n * 10, nil
	})

	require.Len(t, results, 4)
	assert.Equal(t, 10, results[0].Value)
	assert.ErrorIs(t, results[1].Err, errBoom)
	assert.ErrorContains(t, results[2].Err, "panicked")
	assert.Equal(t, 40, results[3].Value)
	assert.NoError(t, results[3].Err)
}

func TestMap_RespeitaIntervaloEntreChamadas(t *testing.T) {
	delay := 30 * time.Millisecond

	var mu sync.Mutex
	starts := make([]time.Time, 0)

	Map(context.Background(), []int{1, 2, 3}, Options{Concurrency: 1, Delay: delay}, func(_ context.Context, n int) (int, error) {
		mu.Lock()
		starts = append(starts, time.Now())
		mu.Unlock()
		return n, nil
	})

	require.Len(t, starts, 3)
	for i := 1; i < len(starts); i++ {
		// folga pequena para a granularidade do relógio
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), delay-5*time.Millisecond)
	}
}

func TestMap_SerialEsperaAposFimDaChamada(t *testing.T) {
	delay := 40 * time.Millisecond
	work := 60 * time.Millisecond

	var starts, ends []time.Time

	Map(context.Background(), []int{1, 2, 3}, Options{Concurrency: 1, Delay: delay}, func(_ context.Context, n int) (int, error) {
		starts = append(starts, time.Now())
		time.Sleep(work)
		ends = append(ends, time.Now())
		return n, nil
	})

	require.Len(t, starts, 3)
	require.Len(t, ends, 3)
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(ends[i-1]), delay-5*time.Millisecond)
	}
}

func TestMap_ConcorrenciaLimitada(t *testing.T) {
	var running, peak int32

	Map(context.Background(), make([]int, 12), Options{Concurrency: 3}, func(_ context.Context, _ int) (int, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return 0, nil
	})

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestMap_ContextoCanceladoMarcaRestantes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	results := Map(ctx, []int{1, 2, 3}, Options{Concurrency: 1, Delay: time.Hour}, func(_ context.Context, n int) (int, error) {
		cancel()
		return n, nil
	})

	assert.Equal(t, 1, results[0].Value)
	assert.Error(t, results[1].Err)
	assert.Error(t, results[2].Err)
}

func TestMap_ListaVazia(t *testing.T) {
	results := Map(context.Background(), []string{}, Options{}, func(_ context.Context, s string) (string, error) {
		return s, nil
	})
	assert.Empty(t, results)
}

func TestMap_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("results are index-aligned with the input", prop.ForAll(
		func(items []int, concurrency int) bool {
			results := Map(context.Background(), items, Options{Concurrency: concurrency}, func(_ context.Context, n int) (int, error) {
				if n%7 == 0 {
					return 0, errors.New("multiple of seven")
				}
				return n + 1, nil
			})

			if len(results) != len(items) {
				return false
			}
			for i, n := range items {
				if n%7 == 0 {
					if results[i].Err == nil {
						return false
					}
					continue
				}
				if results[i].Err != nil || results[i].Value != n+1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.IntRange(0, 8),
	))

	properties.Property("sequential runs start in input order", prop.ForAll(
		func(items []int) bool {
			var mu sync.Mutex
			order := make([]int, 0, len(items))

			Map(context.Background(), items, Options{Concurrency: 1}, func(_ context.Context, n int) (int, error) {
				mu.Lock()
				order = append(order, n)
				mu.Unlock()
				return n, nil
			})

			if len(order) != len(items) {
				return false
			}
			for i := range items {
				if order[i] != items[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
