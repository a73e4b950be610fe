// Package router tracks which of the fixed portfolio views is active.
package router

import (
	"errors"
	"fmt"

	"portfolio-cli/internal/model"
)

var ErrUnknownView = errors.New("unknown view")

type UnknownViewError struct {
	View model.View
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view: %q", string(e.View))
}

func (e *UnknownViewError) Unwrap() error { return ErrUnknownView }

type Router struct {
	current model.View
}

func New() *Router {
	return &Router{current: model.ViewHome}
}

func (r *Router) Current() model.View {
	return r.current
}

// Navigate sets the active view. Navigating to the active view is allowed
// and changes nothing.
func (r *Router) Navigate(v model.View) error {
	if !v.Valid() {
		return &UnknownViewError{View: v}
	}
	r.current = v
	return nil
}

func (r *Router) Views() []model.View {
	return model.Views()
}

func (r *Router) Next() model.View {
	return r.step(1)
}

func (r *Router) Prev() model.View {
	return r.step(-1)
}

func (r *Router) step(delta int) model.View {
	views := model.Views()
	idx := 0
	for i, v := range views {
		if v == r.current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(views)) % len(views)
	_ = r.Navigate(views[idx])
	return r.current
}
