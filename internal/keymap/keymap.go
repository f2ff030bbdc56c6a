package keymap

import "strconv"

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "more keys", "global"},

	// Carousel
	{ActionPrev, []string{"left", "h"}, "previous", "carousel"},
	{ActionNext, []string{"right", "l"}, "next", "carousel"},
	{ActionGoTo, digits(), "jump to product", "carousel"},
	{ActionEnlarge, []string{"enter"}, "enlarge", "carousel"},

	// Enlarged product
	{ActionClose, []string{"esc", "enter"}, "close", "enlarged"},
	{ActionPrev, []string{"left", "h"}, "previous", "enlarged"},
	{ActionNext, []string{"right", "l"}, "next", "enlarged"},
}

func digits() []string {
	keys := make([]string, 0, 9)
	for d := 1; d <= 9; d++ {
		keys = append(keys, strconv.Itoa(d))
	}
	return keys
}

// Digit returns the 0-based product index for a digit key.
func Digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of every named context, in order.
// A key bound in an earlier context shadows the same key later on.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, ctx := range contexts {
		result = append(result, ByContext(ctx)...)
	}
	return result
}
