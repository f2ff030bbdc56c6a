// Package handler provides a result type and dispatch chain for key actions.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/keymap"
)

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the action.
var NotHandled = Result{}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler attempts to handle an action triggered by key.
type Handler func(action keymap.Action, key string) Result

// Chain resolves key and runs handlers in order until one handles it.
// Unbound keys are never handled.
func Chain(r *keymap.Resolver, key string, handlers ...Handler) (bool, tea.Cmd) {
	action := r.Resolve(key)
	if action == "" {
		return false, nil
	}
	for _, h := range handlers {
		if res := h(action, key); res.Handled {
			return true, res.Cmd
		}
	}
	return false, nil
}
