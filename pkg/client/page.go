package client

import (
	"context"
	"sync"
)

// FetchState is the lifecycle of a page's data fetch.
type FetchState int

const (
	FetchLoading FetchState = iota
	FetchSuccess
	FetchError
)

func (s FetchState) String() string {
	switch s {
	case FetchLoading:
		return "loading"
	case FetchSuccess:
		return "success"
	case FetchError:
		return "error"
	default:
		return "unknown"
	}
}

// PageData tracks one routed view's data fetch: loading until the single
// request resolves, then success or error. There is no automatic retry;
// a failed page stays in the error state until loaded again explicitly.
type PageData[T any] struct {
	mu    sync.Mutex
	state FetchState
	data  T
	err   error
}

// NewPageData returns page data in the loading state.
func NewPageData[T any]() *PageData[T] {
	return &PageData[T]{state: FetchLoading}
}

// Load runs the fetch and records the outcome.
func (p *PageData[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	p.mu.Lock()
	p.state = FetchLoading
	p.mu.Unlock()

	data, err := fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.err = err
		p.state = FetchError
		return
	}
	p.data = data
	p.err = nil
	p.state = FetchSuccess
}

// State returns the current fetch state.
func (p *PageData[T]) State() FetchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Data returns the fetched value and the fetch error, if any.
func (p *PageData[T]) Data() (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data, p.err
}
