package chunk_test

import (
	"path/filepath"
	"testing"

	"github.com/MobRulesGames/tilechunk/base"
	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/chunk"
	. "github.com/smartystreets/goconvey/convey"
)

func GivenLoadedChunkDefs() {
	base.SetDatadir("testdata")
	chunk.LoadAllChunksInDir(filepath.Join(base.GetDataDir(), "chunks"))
}

func TestChunk(t *testing.T) {
	Convey("chunk defs", t, ChunkSpecs)
}

func ChunkSpecs() {
	GivenLoadedChunkDefs()

	Convey("load from the datadir", func() {
		So(chunk.GetAllChunkNames(), ShouldResemble, []string{"cellar", "lab"})
	})

	Convey("stamp out chunks with storage sized to the def", func() {
		c := chunk.MakeChunk("lab")
		So(c.Name, ShouldEqual, "lab")
		So(c.Size.CellCount(), ShouldEqual, 12)
		So(c.Tiles, ShouldNotBeNil)
		So(c.Tiles.Size(), ShouldResemble, c.Size)

		Convey("each chunk gets its own tiles", func() {
			other := chunk.MakeChunk("lab")
			So(other.ChunkDef, ShouldEqual, c.ChunkDef)

			c.Tiles.Set(board.MakePos(0, 0), 7)
			_, ok := other.Tiles.Get(board.MakePos(0, 0))
			So(ok, ShouldBeFalse)
		})
	})
}
