package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing, providing helpers to simulate user
// input and inspect state. Commands are collected, never run: most of them
// are timers that would block the test.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a harness for m and captures its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey simulates typing key as runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, ...).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Click sends a left button press and release at x, y.
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Press sends a left button press at x, y.
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Drag sends a left button motion to x, y.
func (h *Harness) Drag(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

// Release sends a left button release at x, y.
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// Wheel sends a wheel event with button at x, y.
func (h *Harness) Wheel(button tea.MouseButton, x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ViewContains checks if the view contains substr once styling is removed.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}
