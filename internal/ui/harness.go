package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rotary-menu/internal/menu"
)

// Harness feeds messages to a Model the way the program loop would, running
// returned commands inline, so a session can be driven without a terminal.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send delivers msgs in order. Each message's command chain runs to
// completion before the next message is delivered.
func (h *Harness) Send(msgs ...tea.Msg) {
	if h.model == nil {
		return
	}
	for _, msg := range msgs {
		for msg != nil {
			_, cmd := h.model.Update(msg)
			if cmd == nil {
				break
			}
			msg = cmd()
		}
	}
}

// Current returns the navigator's selected item.
func (h *Harness) Current() *menu.Item {
	if h.model == nil {
		return nil
	}
	return h.model.nav.Current()
}

// Frames returns how many frames the navigator has pushed to the model.
func (h *Harness) Frames() int {
	if h.model == nil {
		return 0
	}
	return h.model.Frames()
}

// Quitting reports whether the session has ended.
func (h *Harness) Quitting() bool {
	return h.model != nil && h.model.quitting
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
