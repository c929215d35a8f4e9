package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/rotary-menu/internal/menu"
)

type styledLine struct {
	prefix      string
	prefixStyle *lipgloss.Style
	text        string
	style       *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := make([]styledLine, 0, 8)
	lines = append(lines, styledLine{text: m.menuHeader(), style: styles.Breadcrumb})
	lines = append(lines, styledLine{prefix: "> ", prefixStyle: styles.Indicator, text: m.primary, style: styles.Primary})
	lines = append(lines, styledLine{prefix: "  ", text: m.secondary, style: styles.Secondary})

	if current := m.nav.Current(); current != nil {
		editable := current.Flags.Has(menu.FlagEditData)
		if editable || m.verbose {
			style := styles.Value
			if editable {
				style = styles.EditableValue
			}
			lines = append(lines, styledLine{prefix: "  ", text: fmt.Sprintf("value: %d", current.Data), style: style})
		}
		if m.verbose {
			enc := m.nav.Encoder()
			lines = append(lines,
				styledLine{prefix: "  ", text: "flags: " + current.Flags.String(), style: styles.Flags},
				styledLine{prefix: "  ", text: fmt.Sprintf("encoder: raw %d pos %d step %+d", m.counter.Value(), enc.Current(), enc.Delta()), style: styles.Flags},
			)
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height)
	return renderLines(lines, m.width)
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	current := m.nav.Current()
	if current == nil {
		return defaultRootTitle
	}
	path := m.nav.Graph().Path(current)
	for _, item := range path[:len(path)-1] {
		segments = append(segments, item.Title)
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) footerText() string {
	parts := make([]string, 0, 5)
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		head := line.prefix
		if head != "" && line.prefixStyle != nil {
			head = line.prefixStyle.Render(head)
		}
		text := line.text
		if text != "" && line.style != nil {
			text = line.style.Render(text)
		}
		rendered := head + text
		if width > 0 && ansi.StringWidth(rendered) > width {
			rendered = ansi.Truncate(rendered, width, "…")
		}
		out[i] = rendered
	}
	return strings.Join(out, "\n")
}
