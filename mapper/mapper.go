// Package mapper implements the apply family: element mapping over labeled
// containers, shape-simplifying and template-checked variants, mapping over
// several recycled containers at once, and mapping along a grid axis.
package mapper

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"shape-mapper/container"
)

// Func transforms one element. Returning an error aborts the whole call.
type Func[T, R any] func(T) (R, error)

// Pure lifts an infallible transformation into a Func.
func Pure[T, R any](fn func(T) R) Func[T, R] {
	return func(v T) (R, error) {
		return fn(v), nil
	}
}

// Map applies fn to every element of src in order and returns the results
// as a vector carrying src's labels. The first fn error aborts the call,
// wrapped with the failing index and label.
func Map[T, R any](src *container.Vector[T], fn Func[T, R]) (*container.Vector[R], error) {
	if src == nil {
		return nil, ErrNilContainer
	}

	if fn == nil {
		return nil, ErrNilFunc
	}

	out := make([]R, src.Len())

	for i := 0; i < src.Len(); i++ {
		r, err := fn(src.At(i))
		if err != nil {
			return nil, &ElementError{Index: i, Label: src.Label(i), Err: err}
		}

		out[i] = r
	}

	return container.NewLabeled(out, src.Labels())
}

// MapParallel is Map with up to workers concurrent fn invocations
// (workers < 1 means GOMAXPROCS). Results keep input order. The first fn
// error stops further dispatching, in-flight invocations finish, and only
// that first error is returned; partial results are never observable.
func MapParallel[T, R any](ctx context.Context, src *container.Vector[T], fn Func[T, R], workers int) (*container.Vector[R], error) {
	if src == nil {
		return nil, ErrNilContainer
	}

	if fn == nil {
		return nil, ErrNilFunc
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	out := make([]R, src.Len())

	for i := 0; i < src.Len() && ctx.Err() == nil; i++ {
		i := i
		g.Go(func() error {
			r, err := fn(src.At(i))
			if err != nil {
				return &ElementError{Index: i, Label: src.Label(i), Err: err}
			}

			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return container.NewLabeled(out, src.Labels())
}
