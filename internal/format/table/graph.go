package table

import (
	"strconv"

	"github.com/atomicstack/rotary-menu/internal/menu"
)

var graphHeader = []string{"#", "TITLE", "PARENT", "FLAGS", "RING", "DATA", "CHILD"}

var graphAlignments = []Alignment{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft}

// Graph lists every item of g in construction order, one row each.
func Graph(g *menu.Graph) []string {
	rows := make([][]string, 0, g.Len()+1)
	rows = append(rows, graphHeader)
	for i, item := range g.Items() {
		rows = append(rows, []string{
			strconv.Itoa(i),
			item.Title,
			titleOr(item.Parent(), "-"),
			item.Flags.String(),
			strconv.Itoa(len(g.Ring(item))),
			strconv.FormatUint(uint64(item.Data), 10),
			titleOr(item.Child(), "-"),
		})
	}
	return Format(rows, graphAlignments)
}

func titleOr(item *menu.Item, fallback string) string {
	if item == nil {
		return fallback
	}
	return item.Title
}
