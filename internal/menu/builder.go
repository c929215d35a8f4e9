package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/rotary-menu/internal/logging/events"
)

var (
	// ErrEmptyMenu is returned when a build completes without any items.
	ErrEmptyMenu = errors.New("menu: no items declared")
	// ErrBrokenRing is returned by Verify when a sibling ring is inconsistent.
	ErrBrokenRing = errors.New("menu: broken sibling ring")
)

// Graph holds the item population and its rings. A Graph is not safe for
// concurrent use; build it completely before handing it to a Navigator.
type Graph struct {
	store Store
	start *Item
	last  *Item
	count int
}

// NewGraph returns an empty graph allocating from store. A nil store selects
// a pool of DefaultPoolCapacity.
func NewGraph(store Store) *Graph {
	if store == nil {
		store = NewPool(DefaultPoolCapacity)
	}
	return &Graph{store: store}
}

// AddItem allocates an item, appends it to the construction-order chain and
// rebuilds the ring of its parent so the item is immediately navigable.
func (g *Graph) AddItem(title string, parent *Item, action Action, flags Flags) (*Item, error) {
	item, err := g.store.Allocate()
	if err != nil {
		events.Build.Fail(title, err)
		return nil, fmt.Errorf("add %q: %w", title, err)
	}
	item.Title = boundTitle(title)
	item.parent = parent
	item.child = nil
	item.Action = action
	item.Flags |= flags
	item.following = nil

	if g.last != nil {
		g.last.following = item
	}
	g.last = item
	if g.start == nil {
		g.start = item
	}
	g.count++
	events.Build.Add(item.Title, titleOf(parent), uint8(item.Flags))

	g.Rechain(parent)
	return item, nil
}

// Rechain rebuilds from scratch the ring of items whose parent is parent
// (nil selects the top level) and returns its size. Membership comes from
// the construction-order chain, so the walk is over the whole population.
func (g *Graph) Rechain(parent *Item) int {
	var first, prev *Item
	size := 0
	for item := g.start; item != nil; item = item.following {
		if item.parent != parent {
			continue
		}
		if first == nil {
			first = item
		}
		item.prev = prev
		if prev != nil {
			prev.next = item
		}
		prev = item
		size++
	}
	if first != nil {
		first.prev = prev
		prev.next = first
	}
	events.Build.Rechain(titleOf(parent), size)
	return size
}

// SetChild makes item enterable: a short press on item moves to child.
// By convention child is the "Back" entry of the subordinate ring.
func (g *Graph) SetChild(item, child *Item) {
	if item == nil {
		return
	}
	item.child = child
	item.Flags |= FlagGotoChild
	events.Build.SetChild(item.Title, titleOf(child))
}

// Start returns the first item ever added.
func (g *Graph) Start() *Item { return g.start }

// Len returns the number of items in the graph.
func (g *Graph) Len() int { return g.count }

// Walk visits items in construction order until fn returns false.
func (g *Graph) Walk(fn func(*Item) bool) {
	for item := g.start; item != nil; item = item.following {
		if !fn(item) {
			return
		}
	}
}

// Items returns every item in construction order.
func (g *Graph) Items() []*Item {
	items := make([]*Item, 0, g.count)
	g.Walk(func(item *Item) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Ring returns the ring containing item, beginning at item.
func (g *Graph) Ring(item *Item) []*Item {
	if item == nil {
		return nil
	}
	ring := []*Item{item}
	for cur := item.next; cur != nil && cur != item && len(ring) <= g.count; cur = cur.next {
		ring = append(ring, cur)
	}
	return ring
}

// Path returns the chain of parents from the top level down to item.
func (g *Graph) Path(item *Item) []*Item {
	var path []*Item
	for cur := item; cur != nil && len(path) <= g.count; cur = cur.parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Verify checks every ring against the parent partitions derived from the
// construction-order chain.
func (g *Graph) Verify() error {
	partitions := make(map[*Item][]*Item)
	order := make([]*Item, 0)
	for item := g.start; item != nil; item = item.following {
		if _, ok := partitions[item.parent]; !ok {
			order = append(order, item.parent)
		}
		partitions[item.parent] = append(partitions[item.parent], item)
	}
	for _, parent := range order {
		members := partitions[parent]
		for _, item := range members {
			if item.next == nil || item.prev == nil {
				return fmt.Errorf("%w: %q is not linked", ErrBrokenRing, item.Title)
			}
			if item.next.prev != item || item.prev.next != item {
				return fmt.Errorf("%w: %q has inconsistent neighbours", ErrBrokenRing, item.Title)
			}
		}
		seen := make(map[*Item]struct{}, len(members))
		cur := members[0]
		for range members {
			if cur.parent != parent {
				return fmt.Errorf("%w: %q joined the ring of %q", ErrBrokenRing, cur.Title, titleOf(parent))
			}
			if _, dup := seen[cur]; dup {
				return fmt.Errorf("%w: ring of %q closes early at %q", ErrBrokenRing, titleOf(parent), cur.Title)
			}
			seen[cur] = struct{}{}
			cur = cur.next
		}
		if cur != members[0] {
			return fmt.Errorf("%w: ring of %q does not close", ErrBrokenRing, titleOf(parent))
		}
	}
	return nil
}

// Release returns every item to the store and empties the graph.
func (g *Graph) Release() int {
	released := g.store.ReleaseAll(g.start)
	g.start = nil
	g.last = nil
	g.count = 0
	events.Build.Release(released)
	return released
}

// Builder is the build entry point. The first failure sticks: later calls
// are no-ops and Build aborts, releasing the partial graph.
type Builder struct {
	graph *Graph
	err   error
}

// NewBuilder returns a builder allocating from store.
func NewBuilder(store Store) *Builder {
	return &Builder{graph: NewGraph(store)}
}

// Add declares an item. It returns nil once the build has failed.
func (b *Builder) Add(title string, parent *Item, action Action, flags Flags) *Item {
	if b.err != nil {
		return nil
	}
	item, err := b.graph.AddItem(title, parent, action, flags)
	if err != nil {
		b.err = err
		return nil
	}
	return item
}

// SetChild links item to its subordinate ring.
func (b *Builder) SetChild(item, child *Item) {
	if b.err != nil {
		return
	}
	b.graph.SetChild(item, child)
}

// Fail aborts the build with err unless it has already failed.
func (b *Builder) Fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Err returns the first failure recorded by the builder.
func (b *Builder) Err() error { return b.err }

// Build finishes construction. On failure the partial graph is released and
// never returned.
func (b *Builder) Build() (*Graph, error) {
	if b.err == nil && b.graph.Len() == 0 {
		b.err = ErrEmptyMenu
	}
	if b.err == nil {
		b.err = b.graph.Verify()
	}
	if b.err != nil {
		b.graph.Release()
		return nil, b.err
	}
	return b.graph, nil
}
