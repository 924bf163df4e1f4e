// Package screen tracks the fetch lifecycle of each screen.
package screen

// Phase is the tag of a ViewState.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ViewState is exactly one of Loading, Failed(message) or Ready(data).
// The zero value is Loading.
type ViewState[T any] struct {
	phase   Phase
	message string
	data    T
}

// Loading returns the initial state.
func Loading[T any]() ViewState[T] {
	return ViewState[T]{phase: PhaseLoading}
}

// Failed carries a user-facing message.
func Failed[T any](message string) ViewState[T] {
	return ViewState[T]{phase: PhaseFailed, message: message}
}

// Ready carries the fetched payload.
func Ready[T any](data T) ViewState[T] {
	return ViewState[T]{phase: PhaseReady, data: data}
}

// Phase returns the state tag.
func (s ViewState[T]) Phase() Phase { return s.phase }

// IsLoading reports whether the fetch is still pending.
func (s ViewState[T]) IsLoading() bool { return s.phase == PhaseLoading }

// Data returns the payload when Ready.
func (s ViewState[T]) Data() (T, bool) {
	if s.phase != PhaseReady {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Message returns the failure message when Failed.
func (s ViewState[T]) Message() (string, bool) {
	if s.phase != PhaseFailed {
		return "", false
	}
	return s.message, true
}
