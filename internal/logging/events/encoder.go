package events

import "github.com/atomicstack/rotary-menu/internal/logging"

type EncoderTracer struct{}

var Encoder = EncoderTracer{}

func (EncoderTracer) Accept(raw uint32, delta int32) {
	logging.Trace("encoder.accept", map[string]interface{}{"raw": raw, "delta": delta})
}

func (EncoderTracer) Reject(raw, factor uint32) {
	logging.Trace("encoder.reject", map[string]interface{}{"raw": raw, "factor": factor})
}
