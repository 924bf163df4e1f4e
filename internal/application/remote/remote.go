// Package remote wraps single asynchronous fetches against the shop API.
package remote

import (
	"context"
	"errors"
	"fmt"
)

// FetchError is the only failure kind surfaced to screens.
// Transport, status and decoding failures all collapse into it.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// Wrap builds a FetchError describing what was being loaded.
func Wrap(what string, err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{
		Message: fmt.Sprintf("Error loading %s: %v", what, err),
		Err:     err,
	}
}

// FetchFunc performs the request and decodes the payload.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Resource is a single-shot typed fetch. It never retries or caches.
type Resource[T any] struct {
	what  string
	fetch FetchFunc[T]
}

// New creates a Resource. what names the payload in error messages.
func New[T any](what string, fetch FetchFunc[T]) Resource[T] {
	return Resource[T]{what: what, fetch: fetch}
}

// What returns the payload description.
func (r Resource[T]) What() string { return r.what }

// Load runs the fetch once. On failure the zero value and a *FetchError are returned.
func (r Resource[T]) Load(ctx context.Context) (T, error) {
	var zero T
	if r.fetch == nil {
		return zero, Wrap(r.what, errors.New("no fetcher configured"))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	value, err := r.fetch(ctx)
	if err != nil {
		return zero, Wrap(r.what, err)
	}
	return value, nil
}
