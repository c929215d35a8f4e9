package menu

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaxTitleWidth bounds item titles in display cells.
const MaxTitleWidth = 16

// Flags select how a press is interpreted for an item.
type Flags uint8

const (
	FlagGotoCallback Flags = 0x10
	FlagGotoChild    Flags = 0x20
	FlagEditData     Flags = 0x40
	FlagGotoParent   Flags = 0x80
)

var flagNames = map[string]Flags{
	"goto_parent":   FlagGotoParent,
	"goto_child":    FlagGotoChild,
	"edit_data":     FlagEditData,
	"goto_callback": FlagGotoCallback,
}

// ParseFlag resolves a flag by its declaration name (e.g. "goto_parent").
func ParseFlag(name string) (Flags, bool) {
	f, ok := flagNames[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	if f == 0 {
		return "-"
	}
	names := make([]string, 0, len(flagNames))
	for name, bit := range flagNames {
		if f.Has(bit) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Item is a single menu entry. Items are owned by the Store that allocated
// them; the sibling, parent, child and construction-order links are
// non-owning.
type Item struct {
	Title  string
	Data   uint32
	Flags  Flags
	Action Action

	prev      *Item
	next      *Item
	parent    *Item
	child     *Item
	following *Item
}

// Next returns the following sibling in the item's ring.
func (i *Item) Next() *Item { return i.next }

// Prev returns the preceding sibling in the item's ring.
func (i *Item) Prev() *Item { return i.prev }

// Parent returns the item one level up, or nil for top-level items.
func (i *Item) Parent() *Item { return i.parent }

// Child returns the entry point of the subordinate ring, if any.
func (i *Item) Child() *Item { return i.child }

// Following returns the next item in construction order.
func (i *Item) Following() *Item { return i.following }

func boundTitle(title string) string {
	return runewidth.Truncate(title, MaxTitleWidth, "")
}

func titleOf(item *Item) string {
	if item == nil {
		return ""
	}
	return item.Title
}
