package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/rotary-menu/internal/testutil"
)

func TestViewStartFrame(t *testing.T) {
	m := NewModel(sampleGraph(t), Options{})
	testutil.AssertGolden(t, "ui_start.golden", m.View())
}

func TestViewFooter(t *testing.T) {
	m := NewModel(sampleGraph(t), Options{ShowFooter: true})
	testutil.AssertGolden(t, "ui_footer.golden", m.View())
}

func TestViewVerboseEditableItem(t *testing.T) {
	h := NewHarness(NewModel(sampleGraph(t), Options{Verbose: true}))
	h.Send(keyDown, keyDown, keyEnter, keyDown, keyEnter, keyUp, keyEnter)
	testutil.AssertGolden(t, "ui_verbose_edit.golden", h.View())
}

func TestViewShowsValueForEditableItems(t *testing.T) {
	g := sampleGraph(t)
	delay, ok := g.Find("Options/Lo Arm/Delay/Set")
	if !ok {
		t.Fatalf("Delay editor missing")
	}
	h := NewHarness(NewModel(g, Options{}))
	h.Model().Navigator().JumpTo(delay)
	h.Send(keyDown)
	view := h.View()
	if !strings.Contains(view, "value: 60") {
		t.Fatalf("expected edited value in view, got:\n%s", view)
	}
	if !strings.HasPrefix(view, "menu→Options→Lo Arm→Delay\n") {
		t.Fatalf("expected breadcrumb header, got:\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	m := NewModel(sampleGraph(t), Options{Width: 12, ShowFooter: true})
	for _, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 12 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestViewLimitsHeight(t *testing.T) {
	m := NewModel(sampleGraph(t), Options{Height: 2, ShowFooter: true})
	if got := strings.Count(m.View(), "\n") + 1; got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}
