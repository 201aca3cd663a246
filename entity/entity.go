// Package entity defines the opaque handles that tile values use to refer to
// things owned by a hosting context, and the remapping hooks that keep those
// handles valid when a chunk is copied or merged into another context.
package entity

import "fmt"

// Id is an opaque handle to an entity owned by some hosting context. The zero
// value never names a real entity.
type Id uint64

const InvalidId Id = 0

func (id Id) Valid() bool {
	return id != InvalidId
}

func (id Id) String() string {
	if !id.Valid() {
		return "entity<invalid>"
	}
	return fmt.Sprintf("entity<%d>", uint64(id))
}

// Mapper is the rewrite rule a duplication/merge facility supplies when
// copying chunks between contexts: given a handle valid in the source
// context, it returns the corresponding handle in the destination context.
type Mapper interface {
	MapId(Id) Id
}

// MapperFunc adapts a plain function to the Mapper interface.
type MapperFunc func(Id) Id

func (f MapperFunc) MapId(id Id) Id {
	return f(id)
}

// TableMapper is a Mapper backed by an explicit old-to-new table. Handles
// with no entry map to themselves, so a partial merge leaves untouched
// references intact.
type TableMapper map[Id]Id

var _ Mapper = (TableMapper)(nil)

func (t TableMapper) MapId(id Id) Id {
	if mapped, ok := t[id]; ok {
		return mapped
	}
	return id
}

// Remapper is implemented by tile value types that hold entity handles.
// RemapEntityIds must apply the Mapper to every handle the value owns, in
// place. Value types holding no handles simply don't implement Remapper.
type Remapper interface {
	RemapEntityIds(Mapper)
}
