package menu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryBuildsEditAction(t *testing.T) {
	r := BuildRegistry()
	action, err := r.Action(" Edit ", Params{Step: 5, Min: 10, Max: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := &Item{Title: "Delay", Data: 10}
	for _, step := range []int32{1, 1, 1, -1} {
		action(ActionContext{Item: item, Step: step})
	}
	if item.Data != 15 {
		t.Fatalf("expected 15 after clamping at 20 and one step back, got %d", item.Data)
	}
}

func TestRegistryRejectsUnknownAction(t *testing.T) {
	_, err := BuildRegistry().Action("arm", Params{})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestRegistryRejectsInvertedRange(t *testing.T) {
	if _, err := BuildRegistry().Action("edit", Params{Min: 9, Max: 3}); err == nil {
		t.Fatalf("expected inverted range to fail")
	}
}

func TestRegistryRegisterAndNames(t *testing.T) {
	r := BuildRegistry()
	r.Register("Toggle", func(Params) (Action, error) {
		return func(ctx ActionContext) { ctx.Item.Data ^= 1 }, nil
	})
	if diff := cmp.Diff([]string{"edit", "toggle"}, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, ok := r.Find("TOGGLE"); !ok {
		t.Fatalf("expected case-insensitive lookup")
	}
}

func TestValueEditorClampsAtLowerBound(t *testing.T) {
	edit := ValueEditor(100, 100, 1000)
	item := &Item{Data: 150}
	edit(ActionContext{Item: item, Step: -1})
	if item.Data != 100 {
		t.Fatalf("expected clamp to 100, got %d", item.Data)
	}
	edit(ActionContext{Item: item, Step: 0})
	if item.Data != 100 {
		t.Fatalf("expected zero step to keep 100, got %d", item.Data)
	}
}

func TestValueEditorUnboundedMaxDoesNotOverflow(t *testing.T) {
	action, err := BuildRegistry().Action("edit", Params{Step: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := &Item{Data: ^uint32(0) - 3}
	action(ActionContext{Item: item, Step: 1})
	if item.Data != ^uint32(0) {
		t.Fatalf("expected saturation at max uint32, got %d", item.Data)
	}
}
