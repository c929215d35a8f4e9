package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/rotary-menu/internal/logging/events"
)

// EventKind classifies an input event.
type EventKind int

const (
	EventEncoderTick EventKind = iota
	EventShortPress
	EventLongPress
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventEncoderTick:
		return "tick"
	case EventShortPress:
		return "press"
	case EventLongPress:
		return "long-press"
	case EventQuit:
		return "quit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one classified input. Raw is only meaningful for encoder ticks.
type Event struct {
	Kind EventKind
	Raw  uint32
}

// Source delivers input events one at a time, blocking between them.
type Source interface {
	Next(ctx context.Context) (Event, error)
}

// Navigator owns the current item and applies input events to it. After
// every transition that changes the current item it pushes a frame to the
// sink. A Navigator is not safe for concurrent use; feed it from a single
// loop.
type Navigator struct {
	graph   *Graph
	encoder *Encoder
	sink    Sink
	current *Item

	inAction bool
}

// Option customises a Navigator.
type Option func(*Navigator)

// WithFilterFactor sets the encoder filter factor.
func WithFilterFactor(factor int) Option {
	return func(n *Navigator) {
		n.encoder = NewEncoder(factor)
	}
}

// WithStart selects the initially current item. Nil is ignored.
func WithStart(item *Item) Option {
	return func(n *Navigator) {
		if item != nil {
			n.current = item
		}
	}
}

// NewNavigator returns a navigator positioned at the graph's start item.
func NewNavigator(g *Graph, sink Sink, opts ...Option) *Navigator {
	n := &Navigator{
		graph:   g,
		encoder: NewEncoder(DefaultFilterFactor),
		sink:    sink,
	}
	if g != nil {
		n.current = g.Start()
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Current returns the selected item.
func (n *Navigator) Current() *Item { return n.current }

// Start returns the root item used as the long-press fallback.
func (n *Navigator) Start() *Item {
	if n.graph == nil {
		return nil
	}
	return n.graph.Start()
}

// Graph returns the navigated graph.
func (n *Navigator) Graph() *Graph { return n.graph }

// Encoder exposes the encoder filter state.
func (n *Navigator) Encoder() *Encoder { return n.encoder }

// Tick feeds a raw encoder sample. Accepted samples are dispatched to the
// current item's action if it has one; otherwise the sign of the step moves
// along the ring. It reports whether the current item changed.
func (n *Navigator) Tick(raw uint32) bool {
	delta, ok := n.encoder.Feed(raw)
	if !ok || n.current == nil {
		return false
	}
	before := n.current
	switch {
	case before.Action != nil:
		events.Nav.Action(before.Title, delta)
		n.inAction = true
		before.Action(ActionContext{Nav: n, Item: before, Step: delta})
		n.inAction = false
	case delta > 0:
		n.current = before.next
	case delta < 0:
		n.current = before.prev
	}
	return n.settle(before, "encoder")
}

// ShortPress enters the child ring when the item allows it, otherwise
// returns to the parent when the item allows that. Child wins when both
// flags are set.
func (n *Navigator) ShortPress() bool {
	cur := n.current
	if cur == nil {
		return false
	}
	switch {
	case cur.child != nil && cur.Flags.Has(FlagGotoChild):
		n.current = cur.child
	case cur.parent != nil && cur.Flags.Has(FlagGotoParent):
		n.current = cur.parent
	}
	return n.settle(cur, "press")
}

// LongPress returns to the parent regardless of flags, or to the start item
// from the top level.
func (n *Navigator) LongPress() bool {
	cur := n.current
	if cur == nil {
		return false
	}
	if cur.parent != nil {
		n.current = cur.parent
	} else if start := n.Start(); start != nil {
		n.current = start
	}
	return n.settle(cur, "long-press")
}

// JumpTo makes item current. It reports whether the selection changed.
// Called from an Action, the render is left to the encoder dispatch.
func (n *Navigator) JumpTo(item *Item) bool {
	if item == nil {
		return false
	}
	before := n.current
	n.current = item
	events.Nav.Jump(item.Title)
	if n.inAction {
		return before != item
	}
	return n.settle(before, "jump")
}

// Handle applies ev and reports whether it asked to quit.
func (n *Navigator) Handle(ev Event) bool {
	switch ev.Kind {
	case EventEncoderTick:
		n.Tick(ev.Raw)
	case EventShortPress:
		n.ShortPress()
	case EventLongPress:
		n.LongPress()
	case EventQuit:
		events.Nav.Quit("signal")
		return true
	}
	return false
}

// Run renders the current item and then applies events from src until a
// quit event, end of input or cancellation of ctx.
func (n *Navigator) Run(ctx context.Context, src Source) error {
	n.Render()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				events.Nav.Quit("eof")
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("read input event: %w", err)
		}
		if n.Handle(ev) {
			return nil
		}
	}
}

// Render pushes the current frame to the sink.
func (n *Navigator) Render() {
	if n.sink == nil || n.current == nil {
		return
	}
	primary, secondary := Frame(n.current)
	events.Render.Frame(primary, secondary)
	n.sink.Render(primary, secondary)
}

func (n *Navigator) settle(before *Item, cause string) bool {
	if n.current == before {
		return false
	}
	events.Nav.Move(cause, titleOf(before), titleOf(n.current))
	n.Render()
	return true
}
