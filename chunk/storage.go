// Package chunk provides fast, bounds-aware storage of optional per-tile
// values over a fixed-size board, for looking up which entity (or whatever
// else) occupies a given tile.
package chunk

import (
	"iter"

	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/entity"
)

// Storage holds one optional T per tile of a fixed-size board, addressed by
// board.Pos in row-major order.
//
// Accessors come in two tiers. The unchecked tier (Get, Ref, Set, Remove)
// requires the caller to have validated the Pos already; handing it an
// out-of-bounds Pos is a bug and panics with a *board.OutOfBoundsError. The
// checked tier (TryGet, TryRef, TrySet) validates first and returns the error
// instead.
//
// A Storage is a plain synchronous container: concurrent readers are fine,
// but any mutation needs exclusive access, arranged by the caller.
type Storage[T any] struct {
	cells []Cell[T]
	size  board.Size
}

// Empty returns a Storage for the given board size with every cell empty.
func Empty[T any](size board.Size) *Storage[T] {
	return &Storage[T]{
		cells: make([]Cell[T], size.CellCount()),
		size:  size,
	}
}

func (s *Storage[T]) Size() board.Size {
	return s.size
}

func (s *Storage[T]) cellAt(p board.Pos) *Cell[T] {
	if !p.WithinBounds(s.size) {
		panic(&board.OutOfBoundsError{Size: s.size, Target: p})
	}
	return &s.cells[p.LinearIndex(s.size)]
}

// Get returns a copy of the value at p, if the tile is occupied.
//
// Panics if p is out of bounds.
func (s *Storage[T]) Get(p board.Pos) (T, bool) {
	return s.cellAt(p).Value()
}

// Ref returns a pointer to the value at p for in-place mutation, or nil if
// the tile is empty.
//
// Panics if p is out of bounds.
func (s *Storage[T]) Ref(p board.Pos) *T {
	return s.cellAt(p).Ref()
}

// Set stores v at p. If the tile was already occupied, the prior occupant is
// returned to the caller.
//
// Panics if p is out of bounds.
func (s *Storage[T]) Set(p board.Pos, v T) (prev T, replaced bool) {
	return s.cellAt(p).Put(v)
}

// Remove empties the tile at p and returns the prior occupant, if any.
//
// Panics if p is out of bounds.
func (s *Storage[T]) Remove(p board.Pos) (T, bool) {
	return s.cellAt(p).Take()
}

// TryGet is Get for unvalidated positions: it returns a
// *board.OutOfBoundsError instead of panicking when p is off the board.
func (s *Storage[T]) TryGet(p board.Pos) (T, bool, error) {
	if !p.WithinBounds(s.size) {
		var zero T
		return zero, false, &board.OutOfBoundsError{Size: s.size, Target: p}
	}
	v, ok := s.cells[p.LinearIndex(s.size)].Value()
	return v, ok, nil
}

// TryRef is Ref for unvalidated positions.
func (s *Storage[T]) TryRef(p board.Pos) (*T, error) {
	if !p.WithinBounds(s.size) {
		return nil, &board.OutOfBoundsError{Size: s.size, Target: p}
	}
	return s.cells[p.LinearIndex(s.size)].Ref(), nil
}

// TrySet is Set for unvalidated positions.
func (s *Storage[T]) TrySet(p board.Pos, v T) (prev T, replaced bool, err error) {
	if !p.WithinBounds(s.size) {
		var zero T
		return zero, false, &board.OutOfBoundsError{Size: s.size, Target: p}
	}
	prev, replaced = s.cells[p.LinearIndex(s.size)].Put(v)
	return prev, replaced, nil
}

// TryRemove empties the tile at p if p is on the board, returning the prior
// occupant. Unlike the other Try accessors it does not distinguish "off the
// board" from "on the board but empty": both come back as (zero, false).
// TODO: surface an OutOfBoundsError here like TrySet does; callers that lean
// on the collapsed result need auditing first.
func (s *Storage[T]) TryRemove(p board.Pos) (T, bool) {
	if !p.WithinBounds(s.size) {
		var zero T
		return zero, false
	}
	return s.cells[p.LinearIndex(s.size)].Take()
}

// Cells yields every cell on the board in row-major order, empty ones
// included, paired with its Pos. Exactly Size().CellCount() pairs per
// traversal; each call starts a fresh traversal. The *Cell may be used to
// mutate occupancy in place.
func (s *Storage[T]) Cells() iter.Seq2[board.Pos, *Cell[T]] {
	return func(yield func(board.Pos, *Cell[T]) bool) {
		dx := int(s.size.Dx)
		for i := range s.cells {
			p := board.Pos{
				X: board.BoardSpaceUnit(i % dx),
				Y: board.BoardSpaceUnit(i / dx),
			}
			if !yield(p, &s.cells[i]) {
				return
			}
		}
	}
}

// Drain yields every stored value in row-major order of its tile, emptying
// each tile as it is visited. It is meant for handing every occupant off to
// some external cleanup before discarding the Storage; once a traversal has
// run, the board is empty and a second Drain yields nothing. Breaking out
// early leaves the not-yet-visited tiles occupied.
func (s *Storage[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.cells {
			if v, ok := s.cells[i].Take(); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RemapEntityIds applies m to every entity handle held by every occupied
// cell, in place. Storages of entity.Id get the handle itself rewritten;
// storages of types implementing entity.Remapper delegate to that. Storages
// of anything else are untouched. Call this when the chunk's owning context
// is being duplicated or merged into another one, so stored handles keep
// naming the corresponding entities over there.
func (s *Storage[T]) RemapEntityIds(m entity.Mapper) {
	for i := range s.cells {
		ref := s.cells[i].Ref()
		if ref == nil {
			continue
		}
		switch v := any(ref).(type) {
		case *entity.Id:
			*v = m.MapId(*v)
		case entity.Remapper:
			v.RemapEntityIds(m)
		}
	}
}
