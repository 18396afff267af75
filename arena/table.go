package arena

// slot is one cell of a Table: a generation stamp, a liveness flag, and the
// stored value. Freed slots keep their generation until reuse bumps it.
type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Table is a generational slot arena: the single owner of a population of
// entries of type T, addressed by Handle. Freed slots are recycled through a
// free list; reuse bumps the slot generation so handles into the previous
// occupant are detected rather than aliased.
//
// Table is not safe for concurrent use; callers serialize access externally.
type Table[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of dead slots, LIFO
	count int      // number of live entries
}

// NewTable returns an empty Table.
// Complexity: O(1).
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Insert stores v in the table and returns its Handle.
// Dead slots are reused before the table grows.
// Complexity: O(1) amortized.
func (t *Table[T]) Insert(v T) Handle {
	// 1. Prefer recycling a dead slot, bumping its generation so any handle
	//    into the previous occupant is invalidated.
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[idx]
		s.gen++
		s.live = true
		s.val = v
		t.count++

		return Handle{index: idx, gen: s.gen}
	}

	// 2. Otherwise append a fresh slot. Generations start at 1 so the zero
	//    Handle can never match a live slot.
	t.slots = append(t.slots, slot[T]{gen: 1, live: true, val: v})
	t.count++

	return Handle{index: uint32(len(t.slots) - 1), gen: 1}
}

// Get resolves h to a pointer at the stored value.
//
// The pointer aims into the table and stays valid until the entry is removed
// or a later Insert grows the backing array; it is intended for the owning
// store's internal mutation between inserts and must never escape a public
// API. Returns ErrNoneHandle for the zero Handle and ErrNoSuchEntity for a
// stale or foreign one.
// Complexity: O(1).
func (t *Table[T]) Get(h Handle) (*T, error) {
	s, err := t.resolve(h)
	if err != nil {
		return nil, err
	}

	return &s.val, nil
}

// Contains reports whether h designates a live entry of this table.
// Complexity: O(1).
func (t *Table[T]) Contains(h Handle) bool {
	_, err := t.resolve(h)

	return err == nil
}

// Remove deletes the entry designated by h and recycles its slot.
// The stored value is zeroed so the table drops any references it held.
// Complexity: O(1).
func (t *Table[T]) Remove(h Handle) error {
	s, err := t.resolve(h)
	if err != nil {
		return err
	}

	var zero T
	s.live = false
	s.val = zero
	t.free = append(t.free, h.index)
	t.count--

	return nil
}

// Len reports the number of live entries.
// Complexity: O(1).
func (t *Table[T]) Len() int { return t.count }

// Handles returns the handles of all live entries in ascending slot order.
// The returned slice is freshly allocated on every call.
// Complexity: O(n) over table capacity.
func (t *Table[T]) Handles() []Handle {
	out := make([]Handle, 0, t.count)
	for i := range t.slots {
		if t.slots[i].live {
			out = append(out, Handle{index: uint32(i), gen: t.slots[i].gen})
		}
	}

	return out
}

// resolve validates h against the table and returns its slot.
func (t *Table[T]) resolve(h Handle) (*slot[T], error) {
	if h.IsNone() {
		return nil, ErrNoneHandle
	}
	if int(h.index) >= len(t.slots) {
		return nil, ErrNoSuchEntity
	}
	s := &t.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, ErrNoSuchEntity
	}

	return s, nil
}
