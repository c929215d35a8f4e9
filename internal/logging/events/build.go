package events

import "github.com/atomicstack/rotary-menu/internal/logging"

type BuildTracer struct{}

var Build = BuildTracer{}

func (BuildTracer) Add(title, parent string, flags uint8) {
	logging.Trace("build.add", map[string]interface{}{"title": title, "parent": parent, "flags": flags})
}

func (BuildTracer) Rechain(parent string, size int) {
	logging.Trace("build.rechain", map[string]interface{}{"parent": parent, "size": size})
}

func (BuildTracer) SetChild(item, child string) {
	logging.Trace("build.set-child", map[string]interface{}{"item": item, "child": child})
}

func (BuildTracer) Fail(title string, err error) {
	if err == nil {
		return
	}
	logging.Trace("build.fail", map[string]interface{}{"title": title, "error": err.Error()})
}

func (BuildTracer) Release(count int) {
	logging.Trace("build.release", map[string]interface{}{"count": count})
}
