package chunk

import (
	"github.com/MobRulesGames/tilechunk/base"
	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/entity"
)

func MakeChunk(name string) *Chunk {
	c := Chunk{Defname: name}
	base.GetObject("chunks", &c)
	c.Tiles = Empty[entity.Id](c.Size)
	return &c
}

func GetAllChunkNames() []string {
	return base.GetAllNamesInRegistry("chunks")
}

func LoadAllChunksInDir(dir string) {
	base.RemoveRegistry("chunks")
	base.RegisterRegistry("chunks", make(map[string]*ChunkDef))
	base.RegisterAllObjectsInDir("chunks", dir, ".json", "json")
}

// ChunkDef is the data that is constant between all chunks stamped from the
// same def.
type ChunkDef struct {
	Name string

	// Extent of the chunk's board, in tiles.
	Size board.Size
}

// Chunk is the grouping handle relating one rectangular sub-region of a
// larger map to the tile storage that backs it.
type Chunk struct {
	Defname string
	*ChunkDef

	// Which entity, if any, occupies each tile of this chunk.
	Tiles *Storage[entity.Id]
}

func (c *Chunk) RemapEntityIds(m entity.Mapper) {
	c.Tiles.RemapEntityIds(m)
}
