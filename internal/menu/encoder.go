package menu

import "github.com/atomicstack/rotary-menu/internal/logging/events"

// DefaultFilterFactor folds the two raw increments a detent produces into one step.
const DefaultFilterFactor = 2

// Encoder converts a raw rotary counter into signed logical steps. Samples
// that are not a multiple of the filter factor are bounce and are dropped.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	factor  uint32
	raw     uint32
	current uint32
	prev    uint32
	delta   int32
}

// NewEncoder returns an encoder filter. Factors below one select
// DefaultFilterFactor.
func NewEncoder(factor int) *Encoder {
	if factor < 1 {
		factor = DefaultFilterFactor
	}
	return &Encoder{factor: uint32(factor)}
}

// Feed offers a raw counter sample. It reports false, leaving the state
// untouched, when the sample is filtered out. Otherwise it returns the step
// relative to the last accepted sample. The difference is taken on the
// wrapping counter, so a counter running backwards through zero still
// yields a negative step.
func (e *Encoder) Feed(raw uint32) (int32, bool) {
	if raw%e.factor != 0 {
		events.Encoder.Reject(raw, e.factor)
		return 0, false
	}
	delta := int32(raw-e.raw) / int32(e.factor)
	e.prev = e.current
	e.current = raw / e.factor
	e.raw = raw
	e.delta = delta
	events.Encoder.Accept(raw, delta)
	return delta, true
}

// Current returns the logical position of the last accepted sample.
func (e *Encoder) Current() uint32 { return e.current }

// Prev returns the logical position before the last accepted sample.
func (e *Encoder) Prev() uint32 { return e.prev }

// Delta returns the step derived from the last accepted sample.
func (e *Encoder) Delta() int32 { return e.delta }

// Factor returns the filter factor.
func (e *Encoder) Factor() int { return int(e.factor) }
