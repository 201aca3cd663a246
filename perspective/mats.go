package perspective

import (
	"math"

	"github.com/MobRulesGames/mathgl"
	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/logging"
)

// Region is the screen-space rectangle a board is being presented in.
type Region struct {
	X, Y, Dx, Dy int
}

// MakeBoardMats builds the transform that presents a board's floor as the
// usual tilted diamond, plus its inverse for picking.
func MakeBoardMats(boardSize board.Size, region Region, focusx, focusy, angle, zoom float32) (floor, ifloor mathgl.Mat4) {
	// Note: repeated matrix multiplication is equivalent to composing
	// application of a series of transforms in reverse. So, we build up a
	// transform by multiplying logical pieces but its easiest to see the
	// overall transform by reading in the opposite order. Hence, we start at
	// 'Step 4'.
	var m mathgl.Mat4

	// Step 4: translate the resulting (possibly-squished) diamond to the centre
	// of the target region.
	floor.Translation(float32(region.X+region.Dx/2), float32(region.Y+region.Dy/2), 0)

	// Step 3: rotate about the z axis to put the bottom-left (and, from step 2,
	// most +'ve in z point) at the bottom, and the top-right at the top.
	m.RotationZ(45 * math.Pi / 180)
	floor.Multiply(&m)

	// Step 2: rotate about an axis so as to "push back" the top-right and "pull
	// forward" the bottom-left by the given angle.
	m.RotationAxisAngle(mathgl.Vec3{X: -1, Y: 1}, -angle*math.Pi/180)
	floor.Multiply(&m)

	// Step 1: zoom in or out on the floor.
	m.Scaling(zoom, zoom, zoom)
	floor.Multiply(&m)

	// Step 0: Move the viewer so that the focus is at the origin, and hence
	// becomes centered in the region.
	m.Translation(-focusx, -focusy, 0)
	floor.Multiply(&m)

	ifloor.Assign(&floor)
	ifloor.Inverse()

	logging.Debug("MakeBoardMats returning",
		"boardSize", boardSize,
		"region", region,
		"focusx", focusx,
		"focusy", focusy,
		"angle", angle,
		"zoom", zoom,
	)
	return floor, ifloor
}
