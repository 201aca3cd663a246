package board

import "fmt"

// BoardSpaceUnit refers to distances in units of the 'tiles' of a board. That
// is, an NxM board will be N tiles wide and M tiles long. This gives us a
// natural geometry to describe entity/prop locations.
type BoardSpaceUnit int

// Size is the extent of a board: Dx tiles wide by Dy tiles long.
type Size struct {
	Dx, Dy BoardSpaceUnit
}

func MakeSize(dx, dy BoardSpaceUnit) Size {
	return Size{Dx: dx, Dy: dy}
}

func (s Size) GetDx() BoardSpaceUnit {
	return s.Dx
}

func (s Size) GetDy() BoardSpaceUnit {
	return s.Dy
}

// CellCount returns the number of tiles on a board of this size.
func (s Size) CellCount() int {
	return int(s.Dx) * int(s.Dy)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Dx, s.Dy)
}

// Pos names a single tile in board space. A Pos is just a coordinate pair; it
// can denote a tile that no board of a particular Size actually has. Check
// with WithinBounds before trusting it.
type Pos struct {
	X, Y BoardSpaceUnit
}

func MakePos(x, y BoardSpaceUnit) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// LinearIndex maps a Pos to its row-major offset under the given Size:
// X + Y*Dx. It is defined for every Pos, in-bounds or not; an out-of-bounds
// Pos can yield an offset that aliases some other tile or falls outside
// [0, CellCount()), so the result must not be used without a prior
// WithinBounds check.
func (p Pos) LinearIndex(s Size) int {
	return int(p.X) + int(p.Y)*int(s.Dx)
}

// WithinBounds reports whether p names a tile on a board of size s.
func (p Pos) WithinBounds(s Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Dx && p.Y < s.Dy
}
