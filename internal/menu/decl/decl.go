// Package decl reads menu declarations from TOML and builds them into a
// menu.Graph.
package decl

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/rotary-menu/internal/menu"
)

//go:embed default.toml
var defaultMenu []byte

// File is a decoded declaration. Items are built in the order they appear;
// links are applied once every item exists.
type File struct {
	Items []Entry `toml:"item"`
	Links []Link  `toml:"link"`
}

// Entry declares one menu item. ID is only needed when other rows refer to
// the item. Back opens a submenu on the item: an entry with that title and
// goto_parent is added right after it and becomes its child, so a [[link]]
// for the same item is rejected.
type Entry struct {
	ID     string      `toml:"id"`
	Title  string      `toml:"title"`
	Parent string      `toml:"parent"`
	Back   string      `toml:"back"`
	Flags  []string    `toml:"flags"`
	Data   uint32      `toml:"data"`
	Action string      `toml:"action"`
	Edit   *EditParams `toml:"edit"`
}

// EditParams configures the edit action. Max 0 leaves the range open.
type EditParams struct {
	Step uint32 `toml:"step"`
	Min  uint32 `toml:"min"`
	Max  uint32 `toml:"max"`
}

// Link makes Child the entry point of Item's subordinate ring.
type Link struct {
	Item  string `toml:"item"`
	Child string `toml:"child"`
}

// Parse decodes a declaration. Keys the format does not know are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode menu declaration: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, &Error{Entry: "file", Field: strings.Join(keys, ","), Err: ErrUnknownKey}
	}
	return &f, nil
}

// Load reads and decodes the declaration at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Default returns the built-in sample menu.
func Default() (*File, error) {
	return Parse(bytes.NewReader(defaultMenu))
}

// Validate checks references, ids, flags and action names without
// allocating anything.
func (f *File) Validate(reg *menu.Registry) error {
	if reg == nil {
		reg = menu.BuildRegistry()
	}
	seen := make(map[string]bool, len(f.Items))
	hasBack := make(map[string]bool)
	for i, entry := range f.Items {
		label := entry.label(i)
		if strings.TrimSpace(entry.Title) == "" {
			return &Error{Entry: label, Field: "title", Err: ErrMissingTitle}
		}
		if entry.Parent != "" && !seen[entry.Parent] {
			return &Error{Entry: label, Field: "parent", Err: fmt.Errorf("%w %q", ErrUnknownID, entry.Parent)}
		}
		if _, err := entry.flags(); err != nil {
			return &Error{Entry: label, Field: "flags", Err: err}
		}
		if entry.Action != "" {
			if _, ok := reg.Find(entry.Action); !ok {
				return &Error{Entry: label, Field: "action", Err: fmt.Errorf("%w %q", menu.ErrUnknownAction, entry.Action)}
			}
		} else if entry.Edit != nil {
			return &Error{Entry: label, Field: "edit", Err: ErrEditWithoutAction}
		}
		if entry.ID == "" {
			continue
		}
		if seen[entry.ID] {
			return &Error{Entry: label, Field: "id", Err: ErrDuplicateID}
		}
		seen[entry.ID] = true
		hasBack[entry.ID] = strings.TrimSpace(entry.Back) != ""
	}
	for i, link := range f.Links {
		label := fmt.Sprintf("link[%d]", i)
		if !seen[link.Item] {
			return &Error{Entry: label, Field: "item", Err: fmt.Errorf("%w %q", ErrUnknownID, link.Item)}
		}
		if !seen[link.Child] {
			return &Error{Entry: label, Field: "child", Err: fmt.Errorf("%w %q", ErrUnknownID, link.Child)}
		}
		if hasBack[link.Item] {
			return &Error{Entry: label, Field: "item", Err: fmt.Errorf("%w %q", ErrChildConflict, link.Item)}
		}
	}
	return nil
}

// Build validates the declaration and feeds it through a menu.Builder
// allocating from store. A nil registry selects the built-in actions.
func (f *File) Build(store menu.Store, reg *menu.Registry) (*menu.Graph, error) {
	if reg == nil {
		reg = menu.BuildRegistry()
	}
	if err := f.Validate(reg); err != nil {
		return nil, err
	}
	b := menu.NewBuilder(store)
	byID := make(map[string]*menu.Item, len(f.Items))
	for i, entry := range f.Items {
		flags, _ := entry.flags()
		var action menu.Action
		if entry.Action != "" {
			var params menu.Params
			if entry.Edit != nil {
				params = menu.Params{Step: entry.Edit.Step, Min: entry.Edit.Min, Max: entry.Edit.Max}
			}
			built, err := reg.Action(entry.Action, params)
			if err != nil {
				b.Fail(&Error{Entry: entry.label(i), Field: "action", Err: err})
				break
			}
			action = built
		}
		item := b.Add(entry.Title, byID[entry.Parent], action, flags)
		if item == nil {
			break
		}
		item.Data = entry.Data
		if entry.ID != "" {
			byID[entry.ID] = item
		}
		if back := strings.TrimSpace(entry.Back); back != "" {
			b.SetChild(item, b.Add(back, item, nil, menu.FlagGotoParent))
		}
	}
	for _, link := range f.Links {
		b.SetChild(byID[link.Item], byID[link.Child])
	}
	return b.Build()
}

func (e Entry) label(index int) string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("item[%d]", index)
}

func (e Entry) flags() (menu.Flags, error) {
	var flags menu.Flags
	for _, name := range e.Flags {
		flag, ok := menu.ParseFlag(name)
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownFlag, name)
		}
		flags |= flag
	}
	return flags, nil
}
