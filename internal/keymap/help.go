package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Help adapts bindings to the bubbles help component.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

var _ help.KeyMap = Help{}

// NewHelp builds help for the given contexts. The short view lists every
// binding except the jump digits; the full view has one column per context.
func NewHelp(contexts ...string) Help {
	var h Help
	for _, ctx := range contexts {
		var column []key.Binding
		for _, b := range ByContext(ctx) {
			kb := toKey(b)
			column = append(column, kb)
			if b.Action != ActionGoTo {
				h.short = append(h.short, kb)
			}
		}
		if len(column) > 0 {
			h.full = append(h.full, column)
		}
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }

func toKey(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b), b.Description),
	)
}

var keyGlyphs = map[string]string{
	"left":  "←",
	"right": "→",
	"enter": "⏎",
}

// helpKeys renders the keys of b compactly, e.g. "←/h" or "1-9".
func helpKeys(b Binding) string {
	if b.Action == ActionGoTo && len(b.Keys) > 1 {
		return b.Keys[0] + "-" + b.Keys[len(b.Keys)-1]
	}
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if g, ok := keyGlyphs[k]; ok {
			k = g
		}
		keys[i] = k
	}
	return strings.Join(keys, "/")
}
