package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/rotary-menu/internal/logging/events"
	"github.com/atomicstack/rotary-menu/internal/menu"
)

const (
	clearScreen = "\x1b[H\x1b[J"
	// DefaultHint is the first line of every frame.
	DefaultHint = "Press Esc to exit"
)

// Source reads key chunks from r and converts them into navigator events.
type Source struct {
	r       io.Reader
	counter *Counter
	buf     [3]byte
}

// NewSource reads from r, stepping the simulated encoder by step per arrow.
func NewSource(r io.Reader, step int) *Source {
	return &Source{r: r, counter: NewCounter(step)}
}

// Next blocks until a chunk classifies into an event. Unrecognised input is
// skipped. A read already in progress is not interrupted by ctx.
func (s *Source) Next(ctx context.Context) (menu.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return menu.Event{}, err
		}
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			chunk := s.buf[:n]
			key := Classify(chunk)
			if ev, ok := s.counter.Event(key); ok {
				events.Input.Bytes(chunk, ev.Kind.String())
				return ev, nil
			}
			events.Input.Bytes(chunk, key.String())
		}
		if err != nil {
			return menu.Event{}, err
		}
	}
}

// Counter exposes the simulated encoder count.
func (s *Source) Counter() *Counter { return s.counter }

// Sink redraws the whole screen for each frame.
type Sink struct {
	w    io.Writer
	hint string
	err  error
}

// NewSink writes frames to w under hint. An empty hint selects DefaultHint.
func NewSink(w io.Writer, hint string) *Sink {
	if hint == "" {
		hint = DefaultHint
	}
	return &Sink{w: w, hint: hint}
}

func (s *Sink) Render(primary, secondary string) {
	var buf bytes.Buffer
	buf.WriteString(clearScreen)
	fmt.Fprintf(&buf, "%s\r\n", s.hint)
	fmt.Fprintf(&buf, "> %s\r\n", primary)
	fmt.Fprintf(&buf, "%s\r\n", secondary)
	if _, err := s.w.Write(buf.Bytes()); err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first write failure.
func (s *Sink) Err() error { return s.err }

// Run drives nav from in until quit or end of input. When in is a terminal
// it is switched to raw mode and restored on return.
func Run(ctx context.Context, nav *menu.Navigator, in io.Reader, step int, sink *Sink) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("enable raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}
	if err := nav.Run(ctx, NewSource(in, step)); err != nil {
		return err
	}
	if sink != nil {
		return sink.Err()
	}
	return nil
}
