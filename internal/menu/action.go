package menu

// Action is a custom encoder handler. When an item carries one it fully
// replaces sibling navigation for that item.
type Action func(ActionContext)

// ActionContext describes the encoder event handed to an Action.
type ActionContext struct {
	Nav  *Navigator
	Item *Item
	Step int32
}

// ValueEditor returns an Action that moves the item's Data by step in the
// direction of the encoder, clamped to [lo, hi]. Only the sign of the
// encoder step is used.
func ValueEditor(step, lo, hi uint32) Action {
	if step == 0 {
		step = 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(ctx ActionContext) {
		item := ctx.Item
		if item == nil {
			return
		}
		value := uint64(item.Data)
		switch {
		case ctx.Step > 0:
			value += uint64(step)
		case ctx.Step < 0:
			if value < uint64(lo)+uint64(step) {
				value = uint64(lo)
			} else {
				value -= uint64(step)
			}
		}
		if value > uint64(hi) {
			value = uint64(hi)
		}
		if value < uint64(lo) {
			value = uint64(lo)
		}
		item.Data = uint32(value)
	}
}
