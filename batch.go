// SPDX-License-Identifier: MIT
package ordery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Batch parsing errors.
var (
	ErrPanicked = errors.New("recovery from panic")
)

// ParseAll parses expressions concurrently on a worker pool.
//
// results follow the order of expressions. An empty expression fails the whole batch before any
// parsing starts; a cancelled ctx stops scheduling & returns ctx.Err().
func ParseAll(ctx context.Context, expressions []string, opts ...Option) (results []Result, err error) {
	for index, expression := range expressions {
		if expression == "" {
			err = fmt.Errorf("expression [%d]: %w", index, ErrEmptyExpression)
			return
		}
	}

	if len(expressions) < 1 {
		return
	}

	cfg := newConfig(opts...)
	errs := make([]error, len(expressions))

	var pool *ants.Pool
	if pool, err = ants.NewPool(cfg.PoolSize,
		ants.WithLogger(cfg.Logger),
		ants.WithPanicHandler(func(p interface{}) { cfg.Logger.Errorf("%v: %v", ErrPanicked, p) }),
	); err != nil {
		return
	}
	defer pool.Release()

	results = make([]Result, len(expressions))

	var wg sync.WaitGroup
	for index := range expressions {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
			index := index
			wg.Add(1)

			err = pool.Submit(func() {
				defer wg.Done()

				errs[index] = fmt.Errorf("expression [%d]: %w", index, ErrPanicked)
				results[index], errs[index] = ParseExpression(expressions[index], opts...)
			})
			if err != nil {
				wg.Done()
			}
		}

		if err != nil {
			break
		}
	}
	wg.Wait()

	if err != nil {
		results = nil
		return
	}

	if err = errors.Join(errs...); err != nil {
		results = nil
	}

	return
}
