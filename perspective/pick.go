package perspective

import (
	"math"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/tilechunk/board"
)

// PickTile pushes a modelview-space point (typically a pointer position)
// through the inverse floor transform and names the tile underneath it. The
// second return is false when the point lands off the board; positions
// produced with it true are safe for the unchecked storage accessors.
func PickTile(ifloor *mathgl.Mat4, vx, vy float32, size board.Size) (board.Pos, bool) {
	bx, by, _ := ModelviewToBoard(ifloor, vx, vy)
	p := board.MakePos(
		board.BoardSpaceUnit(math.Floor(float64(bx))),
		board.BoardSpaceUnit(math.Floor(float64(by))),
	)
	if !p.WithinBounds(size) {
		return board.Pos{}, false
	}
	return p, true
}
