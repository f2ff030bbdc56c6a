// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Carousel actions
	ActionPrev    Action = "prev"
	ActionNext    Action = "next"
	ActionGoTo    Action = "go_to"   // 1-9, the digit picks the product
	ActionEnlarge Action = "enlarge" // enter

	// Enlarged view actions
	ActionClose Action = "close"
)

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "enlarged"
}
