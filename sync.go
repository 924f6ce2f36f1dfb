package gateway

import (
	"context"
	"sync"
)

// Call is one gateway operation, bound to its arguments.
type Call[T any] func(context.Context, *Gateway) (T, error)

// AsyncResponse is the outcome of one call issued by All. Exactly one of
// Response and Error is set.
type AsyncResponse[T any] struct {
	Response T
	Error    error
}

// Outline binds RequestOutline to its arguments.
func Outline(content, language, model string) Call[*StreamingResponse] {
	return func(ctx context.Context, gw *Gateway) (*StreamingResponse, error) {
		return gw.RequestOutline(ctx, content, language, model)
	}
}

// Slides binds RequestSlides to its arguments.
func Slides(content, language, model string) Call[*StreamingResponse] {
	return func(ctx context.Context, gw *Gateway) (*StreamingResponse, error) {
		return gw.RequestSlides(ctx, content, language, model)
	}
}

// Asset binds FetchAsset to its argument.
func Asset(name string) Call[*Resource] {
	return func(ctx context.Context, gw *Gateway) (*Resource, error) {
		return gw.FetchAsset(ctx, name)
	}
}

// MockResource binds FetchMockResource to its argument.
func MockResource(name string) Call[*Resource] {
	return func(ctx context.Context, gw *Gateway) (*Resource, error) {
		return gw.FetchMockResource(ctx, name)
	}
}

// All issues every call concurrently and waits for all of them to complete.
//
// Responses are returned in the order of the calls. Each call succeeds or
// fails on its own, a failed call does not affect the others.
func All[T any](ctx context.Context, gw *Gateway, calls ...Call[T]) []AsyncResponse[T] {
	var wg sync.WaitGroup

	responses := make([]AsyncResponse[T], len(calls))

	for idx, call := range calls {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if resp, err := call(ctx, gw); err != nil {
				responses[idx].Error = err
			} else {
				responses[idx].Response = resp
			}
		}()
	}

	wg.Wait()

	return responses
}
