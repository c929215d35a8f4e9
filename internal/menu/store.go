package menu

import "errors"

// DefaultPoolCapacity is the slot count of a pool created without an explicit size.
const DefaultPoolCapacity = 32

var (
	// ErrCapacityExhausted is returned when a Pool has no free slot left.
	ErrCapacityExhausted = errors.New("menu: item pool capacity exhausted")
	// ErrAllocation is returned when a Heap store cannot provide another record.
	ErrAllocation = errors.New("menu: item allocation failed")
)

// Store hands out item records to the builder and reclaims them at teardown.
type Store interface {
	// Allocate returns a zeroed item record.
	Allocate() (*Item, error)
	// ReleaseAll releases every record reachable from first through the
	// construction-order chain and reports how many were released.
	ReleaseAll(first *Item) int
}

// Pool is a fixed-capacity item arena. Records live as long as the pool;
// ReleaseAll is a no-op.
type Pool struct {
	items []Item
	pos   int
}

// NewPool returns a pool with room for capacity items. Non-positive values
// select DefaultPoolCapacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &Pool{items: make([]Item, capacity)}
}

func (p *Pool) Allocate() (*Item, error) {
	if p.pos >= len(p.items) {
		return nil, ErrCapacityExhausted
	}
	item := &p.items[p.pos]
	p.pos++
	return item, nil
}

func (p *Pool) ReleaseAll(*Item) int { return 0 }

// Cap returns the number of slots in the pool.
func (p *Pool) Cap() int { return len(p.items) }

// Used returns the number of slots handed out so far.
func (p *Pool) Used() int { return p.pos }

// Heap allocates one record per call. A positive limit caps the number of
// allocations, after which Allocate fails with ErrAllocation.
type Heap struct {
	limit     int
	allocated int
	released  int
}

// NewHeap returns a heap store. A limit of zero means unlimited.
func NewHeap(limit int) *Heap {
	if limit < 0 {
		limit = 0
	}
	return &Heap{limit: limit}
}

func (h *Heap) Allocate() (*Item, error) {
	if h.limit > 0 && h.allocated >= h.limit {
		return nil, ErrAllocation
	}
	h.allocated++
	return &Item{}, nil
}

// ReleaseAll walks the construction-order chain once, clearing every record.
func (h *Heap) ReleaseAll(first *Item) int {
	count := 0
	for item := first; item != nil; {
		next := item.following
		*item = Item{}
		item = next
		count++
	}
	h.released += count
	return count
}

// Live reports records allocated and not yet released.
func (h *Heap) Live() int { return h.allocated - h.released }
