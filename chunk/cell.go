package chunk

// Cell is one addressable tile slot: either empty or holding exactly one T.
// Occupancy is tracked explicitly so that T's zero value can be stored like
// any other value.
type Cell[T any] struct {
	val      T
	occupied bool
}

func (c *Cell[T]) Occupied() bool {
	return c.occupied
}

// Value returns a copy of the occupant, if any.
func (c *Cell[T]) Value() (T, bool) {
	return c.val, c.occupied
}

// Ref returns a pointer to the occupant for in-place mutation, or nil if the
// cell is empty.
func (c *Cell[T]) Ref() *T {
	if !c.occupied {
		return nil
	}
	return &c.val
}

// Put stores v in the cell. If the cell was occupied the prior occupant is
// returned rather than dropped silently.
func (c *Cell[T]) Put(v T) (prev T, replaced bool) {
	prev, replaced = c.val, c.occupied
	c.val, c.occupied = v, true
	return prev, replaced
}

// Take empties the cell and returns the prior occupant, if any. The slot is
// zeroed so the cell doesn't pin anything the occupant referenced.
func (c *Cell[T]) Take() (T, bool) {
	v, ok := c.val, c.occupied
	var zero T
	c.val, c.occupied = zero, false
	return v, ok
}
