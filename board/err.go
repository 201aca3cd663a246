package board

import "fmt"

// OutOfBoundsError reports a Pos that falls outside a board's Size on at
// least one axis. Checked accessors return it; unchecked accessors panic with
// it because handing them a bad Pos is a bug in the caller, not a runtime
// condition.
type OutOfBoundsError struct {
	Size   Size
	Target Pos
}

var _ error = (*OutOfBoundsError)(nil)

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tile %v is out of bounds for a %v board", e.Target, e.Size)
}
