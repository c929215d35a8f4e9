package events

import (
	"strconv"

	"github.com/atomicstack/rotary-menu/internal/logging"
)

type NavTracer struct{}

type RenderTracer struct{}

type InputTracer struct{}

var (
	Nav    = NavTracer{}
	Render = RenderTracer{}
	Input  = InputTracer{}
)

func (NavTracer) Move(cause, from, to string) {
	logging.Trace("nav.move", map[string]interface{}{"cause": cause, "from": from, "to": to})
}

func (NavTracer) Action(item string, step int32) {
	logging.Trace("nav.action", map[string]interface{}{"item": item, "step": step})
}

func (NavTracer) Jump(target string) {
	logging.Trace("nav.jump", map[string]interface{}{"target": target})
}

func (NavTracer) Quit(reason string) {
	logging.Trace("nav.quit", map[string]interface{}{"reason": reason})
}

func (RenderTracer) Frame(primary, secondary string) {
	logging.Trace("render.frame", map[string]interface{}{"primary": primary, "secondary": secondary})
}

func (InputTracer) Key(key, event string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "event": event})
}

func (InputTracer) Bytes(raw []byte, event string) {
	logging.Trace("input.bytes", map[string]interface{}{"raw": strconv.Quote(string(raw)), "event": event})
}
