package screen

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sanita/internal/application/remote"
)

// LoadedMsg carries the completion of one fetch attempt back to the update loop.
type LoadedMsg[T any] struct {
	Screen  string
	Attempt int
	Data    T
	Err     error
}

// Controller owns one screen's ViewState. Mount starts a fetch; Apply accepts
// only the completion of the current mounted attempt. It is driven from the
// bubbletea update loop and is not safe for concurrent use.
type Controller[T any] struct {
	name     string
	resource remote.Resource[T]
	state    ViewState[T]
	attempt  int
	mounted  bool
	cancel   context.CancelFunc
}

// NewController creates an unmounted controller in the Loading state.
func NewController[T any](name string, resource remote.Resource[T]) *Controller[T] {
	return &Controller[T]{name: name, resource: resource}
}

// Name identifies the screen.
func (c *Controller[T]) Name() string { return c.name }

// State returns the current view state.
func (c *Controller[T]) State() ViewState[T] { return c.state }

// Attempt returns the current attempt number.
func (c *Controller[T]) Attempt() int { return c.attempt }

// Mounted reports whether the screen is showing.
func (c *Controller[T]) Mounted() bool { return c.mounted }

// Mount tears down any previous attempt, enters Loading and returns the fetch command.
func (c *Controller[T]) Mount() tea.Cmd {
	return c.MountWith(c.resource)
}

// MountWith replaces the resource before mounting; detail screens use it to bind an id.
func (c *Controller[T]) MountWith(resource remote.Resource[T]) tea.Cmd {
	c.Teardown()
	c.resource = resource
	c.attempt++
	c.mounted = true
	c.state = Loading[T]()

	ctx, cancel := context.WithCancel(context.Background())
	c.setCancel(cancel)

	name, attempt := c.name, c.attempt
	return func() tea.Msg {
		data, err := resource.Load(ctx)
		return LoadedMsg[T]{Screen: name, Attempt: attempt, Data: data, Err: err}
	}
}

// Reject starts a new attempt that fails immediately without fetching.
func (c *Controller[T]) Reject(err error) {
	c.Teardown()
	c.attempt++
	c.mounted = true
	if err == nil {
		err = errors.New("unavailable")
	}
	c.state = Failed[T](messageOf(err))
}

// Apply moves the state to Ready or Failed. Completions from earlier attempts
// or arriving after Teardown are dropped and Apply reports false.
func (c *Controller[T]) Apply(msg LoadedMsg[T]) bool {
	if !c.mounted || msg.Screen != c.name || msg.Attempt != c.attempt {
		return false
	}
	if !c.state.IsLoading() {
		return false
	}
	c.setCancel(nil)
	if msg.Err != nil {
		c.state = Failed[T](messageOf(msg.Err))
		return true
	}
	c.state = Ready(msg.Data)
	return true
}

// Teardown cancels the in-flight request and unmounts the screen.
func (c *Controller[T]) Teardown() {
	c.setCancel(nil)
	c.mounted = false
}

func (c *Controller[T]) setCancel(cancel context.CancelFunc) {
	prev := c.cancel
	c.cancel = cancel
	if prev != nil {
		prev()
	}
}

func messageOf(err error) string {
	var fe *remote.FetchError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
