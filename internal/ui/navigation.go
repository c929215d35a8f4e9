package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rotary-menu/internal/logging/events"
	"github.com/atomicstack/rotary-menu/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	ev, ok := m.eventForKey(keyMsg)
	if !ok {
		events.Input.Key(keyMsg.String(), "none")
		return nil
	}
	events.Input.Key(keyMsg.String(), ev.Kind.String())
	return m.apply(ev)
}

// eventForKey translates a key press into a navigator event. Arrow keys move
// the simulated encoder count by one detent before it is sampled.
func (m *Model) eventForKey(msg tea.KeyMsg) (menu.Event, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return menu.Event{Kind: menu.EventQuit}, true
	case key.Matches(msg, m.keys.Up):
		return menu.Event{Kind: menu.EventEncoderTick, Raw: m.counter.Up()}, true
	case key.Matches(msg, m.keys.Down):
		return menu.Event{Kind: menu.EventEncoderTick, Raw: m.counter.Down()}, true
	case key.Matches(msg, m.keys.Press):
		return menu.Event{Kind: menu.EventShortPress}, true
	case key.Matches(msg, m.keys.LongPress):
		return menu.Event{Kind: menu.EventLongPress}, true
	}
	return menu.Event{}, false
}

func (m *Model) handleEventMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(EventMsg)
	if !ok {
		return nil
	}
	return m.apply(menu.Event(ev))
}

func (m *Model) apply(ev menu.Event) tea.Cmd {
	if m.quitting {
		return nil
	}
	if m.nav.Handle(ev) {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
