// Package console is the plain terminal front end: blocking raw reads from
// the tty, classified into encoder and button events, and a full-screen
// redraw for every frame.
package console

import "github.com/atomicstack/rotary-menu/internal/menu"

// Key is a classified chunk of terminal input.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyPress
	KeyLongPress
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyPress:
		return "press"
	case KeyLongPress:
		return "long-press"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// Classify maps one read from a raw terminal to a key. A lone ESC quits;
// arrow keys arrive as a three byte CSI sequence.
func Classify(buf []byte) Key {
	switch {
	case len(buf) == 1:
		switch buf[0] {
		case 0x1b, 0x03:
			return KeyQuit
		case '\r', '\n':
			return KeyPress
		case 'd', 'D':
			return KeyLongPress
		}
	case len(buf) == 3 && buf[0] == 0x1b && buf[1] == '[':
		switch buf[2] {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		}
	}
	return KeyNone
}

// Counter stands in for the hardware encoder's free running count. It wraps
// like the hardware register does, so the first Up lands on 2^32-step; that
// sample only passes the filter when step is a power of two.
type Counter struct {
	value uint32
	step  uint32
}

// NewCounter returns a counter moving step units per detent. Steps below one
// select menu.DefaultFilterFactor so every detent passes the filter.
func NewCounter(step int) *Counter {
	if step < 1 {
		step = menu.DefaultFilterFactor
	}
	return &Counter{step: uint32(step)}
}

// Up turns the encoder one detent backwards and returns the new count.
func (c *Counter) Up() uint32 {
	c.value -= c.step
	return c.value
}

// Down turns the encoder one detent forwards and returns the new count.
func (c *Counter) Down() uint32 {
	c.value += c.step
	return c.value
}

func (c *Counter) Value() uint32 { return c.value }

// Event turns a classified key into a navigator event, advancing the counter
// for arrow keys. It reports false for keys that carry no event.
func (c *Counter) Event(k Key) (menu.Event, bool) {
	switch k {
	case KeyQuit:
		return menu.Event{Kind: menu.EventQuit}, true
	case KeyPress:
		return menu.Event{Kind: menu.EventShortPress}, true
	case KeyLongPress:
		return menu.Event{Kind: menu.EventLongPress}, true
	case KeyUp:
		return menu.Event{Kind: menu.EventEncoderTick, Raw: c.Up()}, true
	case KeyDown:
		return menu.Event{Kind: menu.EventEncoderTick, Raw: c.Down()}, true
	}
	return menu.Event{}, false
}
