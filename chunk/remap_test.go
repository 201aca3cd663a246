package chunk_test

import (
	"testing"

	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/chunk"
	"github.com/MobRulesGames/tilechunk/entity"
	"github.com/stretchr/testify/assert"
)

// A tile value that owns a couple of handles into the hosting context.
type trap struct {
	Owner    entity.Id
	Triggers []entity.Id
}

func (t *trap) RemapEntityIds(mapper entity.Mapper) {
	t.Owner = mapper.MapId(t.Owner)
	for i := range t.Triggers {
		t.Triggers[i] = mapper.MapId(t.Triggers[i])
	}
}

func TestRemapEntityIds(t *testing.T) {
	mapper := entity.TableMapper{
		entity.Id(1): entity.Id(101),
		entity.Id(2): entity.Id(102),
	}

	t.Run("rewrites stored handles", func(t *testing.T) {
		storage := chunk.Empty[entity.Id](board.MakeSize(2, 2))
		storage.Set(board.MakePos(0, 0), entity.Id(1))
		storage.Set(board.MakePos(1, 1), entity.Id(2))

		storage.RemapEntityIds(mapper)

		got, _ := storage.Get(board.MakePos(0, 0))
		assert.Equal(t, entity.Id(101), got)
		got, _ = storage.Get(board.MakePos(1, 1))
		assert.Equal(t, entity.Id(102), got)
	})

	t.Run("keeps handles the mapper doesn't know", func(t *testing.T) {
		storage := chunk.Empty[entity.Id](board.MakeSize(2, 2))
		storage.Set(board.MakePos(1, 0), entity.Id(42))

		storage.RemapEntityIds(mapper)

		got, _ := storage.Get(board.MakePos(1, 0))
		assert.Equal(t, entity.Id(42), got)
	})

	t.Run("delegates to values implementing entity.Remapper", func(t *testing.T) {
		storage := chunk.Empty[trap](board.MakeSize(2, 1))
		storage.Set(board.MakePos(0, 0), trap{
			Owner:    entity.Id(1),
			Triggers: []entity.Id{entity.Id(2), entity.Id(7)},
		})

		storage.RemapEntityIds(mapper)

		got, ok := storage.Get(board.MakePos(0, 0))
		assert.True(t, ok)
		assert.Equal(t, entity.Id(101), got.Owner)
		assert.Equal(t, []entity.Id{entity.Id(102), entity.Id(7)}, got.Triggers)
	})

	t.Run("ignores values holding no handles", func(t *testing.T) {
		storage := chunk.Empty[string](board.MakeSize(1, 1))
		storage.Set(board.MakePos(0, 0), "just a label")

		storage.RemapEntityIds(mapper)

		got, _ := storage.Get(board.MakePos(0, 0))
		assert.Equal(t, "just a label", got)
	})
}
