package chunktest

import (
	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/chunk"
)

func GivenABoardSize() board.Size {
	return board.MakeSize(2, 2)
}

func GivenAnEmptyStorage() *chunk.Storage[string] {
	return chunk.Empty[string](GivenABoardSize())
}

// A 3x2 storage with "A" at (0,0), "B" at (2,0) and "C" at (1,1).
func GivenAPopulatedStorage() *chunk.Storage[string] {
	storage := chunk.Empty[string](board.MakeSize(3, 2))
	storage.Set(board.MakePos(0, 0), "A")
	storage.Set(board.MakePos(2, 0), "B")
	storage.Set(board.MakePos(1, 1), "C")
	return storage
}
