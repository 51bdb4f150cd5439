// Package throttle executa uma função sobre uma lista com concorrência limitada
// e intervalo mínimo entre as chamadas.
package throttle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Result é o resultado de um item, na mesma posição da entrada
type Result[T any] struct {
	Value T
	Err   error
}

type Options struct {
	// Concurrency <= 0 significa todos ao mesmo tempo
	Concurrency int
	// Delay é a pausa entre chamadas. Com Concurrency == 1 conta a partir do
	// fim da chamada anterior; nos demais casos, entre o início de duas chamadas.
	Delay time.Duration
}

// Map chama fn para cada item, iniciando na ordem da entrada.
// Falha (ou panic) de um item vira o Err daquele item e não interrompe os outros.
// Se ctx for cancelado, os itens que ainda não começaram recebem ctx.Err().
func Map[In, Out any](ctx context.Context, items []In, opts Options, fn func(context.Context, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(items))
	if len(items) == 0 {
		return results
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 || concurrency > len(items) {
		concurrency = len(items)
	}

	if concurrency == 1 {
		serial(ctx, items, results, opts.Delay, fn)
		return results
	}

	var limiter *rate.Limiter
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		if err := acquire(ctx, limiter, sem); err != nil {
			cancelRemaining(results[i:], err)
			break
		}

		wg.Add(1)
		go func(i int, item In) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = run(ctx, item, fn)
		}(i, item)
	}

	wg.Wait()

	return results
}

// serial roda um item por vez na goroutine do chamador
func serial[In, Out any](ctx context.Context, items []In, results []Result[Out], delay time.Duration, fn func(context.Context, In) (Out, error)) {
	for i, item := range items {
		if i > 0 && delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				cancelRemaining(results[i:], err)
				return
			}
		}
		if err := ctx.Err(); err != nil {
			cancelRemaining(results[i:], err)
			return
		}
		results[i] = run(ctx, item, fn)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func run[In, Out any](ctx context.Context, item In, fn func(context.Context, In) (Out, error)) (res Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[Out]{Err: fmt.Errorf("throttle: task panicked: %v", r)}
		}
	}()

	value, err := fn(ctx, item)
	return Result[Out]{Value: value, Err: err}
}

// acquire espera o intervalo do limiter e depois uma vaga no semáforo
func acquire(ctx context.Context, limiter *rate.Limiter, sem chan struct{}) error {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
	}

	select {
	case sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cancelRemaining[Out any](results []Result[Out], err error) {
	for i := range results {
		results[i].Err = err
	}
}
