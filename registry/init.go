package registry

import (
	"path/filepath"

	"github.com/MobRulesGames/tilechunk/base"
	"github.com/MobRulesGames/tilechunk/chunk"
)

func LoadAllRegistries() {
	datadir := base.GetDataDir()
	chunk.LoadAllChunksInDir(filepath.Join(datadir, "chunks"))
}
