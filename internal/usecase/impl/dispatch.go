// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
)

type dispatchResult[T any] struct {
	val T
	err error
}

// dispatch runs a database task on its own goroutine so a caller that stops
// waiting never interrupts the task mid-flight. The task receives a context
// detached from the caller's cancellation, bounded by the given timeout: a
// saturated pool makes the task fail with ErrPoolExhausted instead of parking
// on checkout forever. A zero timeout leaves the task unbounded. A panic
// inside the task is converted into ErrDispatchFailed instead of taking the
// process down.
func dispatch[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	resultCh := make(chan dispatchResult[T], 1)

	taskCtx := context.WithoutCancel(ctx)
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		taskCtx, cancel = context.WithTimeout(taskCtx, timeout)
	}

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				resultCh <- dispatchResult[T]{
					err: errors.Wrapf(domainerrors.ErrDispatchFailed, "database task panicked: %v", r),
				}
			}
		}()

		val, err := fn(taskCtx)
		resultCh <- dispatchResult[T]{val: val, err: err}
	}()

	select {
	case <-ctx.Done():
		// The task keeps running in the background; only the caller gives up.
		return zero, errors.Wrapf(domainerrors.ErrDispatchFailed, "caller abandoned database task: %v", ctx.Err())
	case res := <-resultCh:
		if res.err != nil && errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
			return zero, errors.Wrap(domainerrors.ErrPoolExhausted, "database task hit its deadline waiting on the pool")
		}

		return res.val, res.err
	}
}
