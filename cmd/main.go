package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/MobRulesGames/tilechunk/base"
	"github.com/MobRulesGames/tilechunk/board"
	"github.com/MobRulesGames/tilechunk/chunk"
	"github.com/MobRulesGames/tilechunk/entity"
	"github.com/MobRulesGames/tilechunk/logging"
	"github.com/MobRulesGames/tilechunk/registry"
)

func onTilechunkPanic(recoveredValue interface{}) {
	stack := debug.Stack()
	logging.Error("PANIC", "val", recoveredValue, "stack", string(stack))
	fmt.Printf("PANIC: %v\n", recoveredValue)
	fmt.Printf("PANIC: %s\n", string(stack))
}

func openLogFile(datadir string) (*os.File, error) {
	// If an error happens when making this directory it might already exist;
	// all that really matters is making the log file in the directory.
	os.Mkdir(filepath.Join(datadir, "logs"), 0o777)
	return os.Create(filepath.Join(datadir, "logs", "tilechunk.log"))
}

func initializeDependencies(datadir string, verbose bool) func() {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	logging.SetLoggingLevel(lvl)

	base.SetDatadir(datadir)

	logFile, err := openLogFile(base.GetDataDir())
	if err != nil {
		fmt.Printf("warning: couldn't open logfile in %q\nlogging to stderr only\n", base.GetDataDir())
		logging.Info("setting datadir", "datadir", base.GetDataDir())
		return func() {}
	}

	// Ignore the returned 'undo' func; it's only really for testing. We don't
	// want to _not_ log to the log file.
	logging.Redirect(io.MultiWriter(os.Stderr, logFile))

	logging.Info("setting datadir", "datadir", base.GetDataDir())
	return func() {
		logFile.Close()
	}
}

// fill places entities on every other tile of the chunk, simulating a hosting
// context spawning things into it.
func fill(c *chunk.Chunk, firstId entity.Id) []entity.Id {
	var placed []entity.Id
	next := firstId
	for pos, cell := range c.Tiles.Cells() {
		if (pos.X+pos.Y)%2 != 0 {
			continue
		}
		cell.Put(next)
		placed = append(placed, next)
		next++
	}
	return placed
}

// duplicate copies the chunk into a 'new context': same def, fresh storage,
// every stored handle rewritten through the mapper.
func duplicate(c *chunk.Chunk, mapper entity.Mapper) *chunk.Chunk {
	dupe := chunk.MakeChunk(c.Defname)
	for pos, cell := range c.Tiles.Cells() {
		if id, ok := cell.Value(); ok {
			dupe.Tiles.Set(pos, id)
		}
	}
	dupe.RemapEntityIds(mapper)
	return dupe
}

func Main(argv []string) {
	flags := flag.NewFlagSet(argv[0], flag.ExitOnError)
	datadir := flags.String("datadir", "data", "directory holding chunk defs")
	verbose := flags.Bool("verbose", false, "log debug output")
	flags.Parse(argv[1:])

	cleanup := initializeDependencies(*datadir, *verbose)
	defer cleanup()

	defer func() {
		if r := recover(); r != nil {
			onTilechunkPanic(r)
			panic(r)
		}
	}()

	registry.LoadAllRegistries()

	names := chunk.GetAllChunkNames()
	if len(names) == 0 {
		logging.Error("no chunk defs found", "datadir", base.GetDataDir())
		os.Exit(1)
	}
	logging.Info("loaded chunk defs", "names", names)

	c := chunk.MakeChunk(names[0])
	logging.Info("made chunk", "name", c.Name, "size", c.Size, "cells", c.Size.CellCount())

	placed := fill(c, entity.Id(1))
	logging.Info("placed entities", "count", len(placed))

	// A checked probe just off the board, the way a caller holding pointer
	// coordinates would do it.
	offBoard := board.MakePos(c.Size.Dx, 0)
	if _, _, err := c.Tiles.TryGet(offBoard); err != nil {
		logging.Info("checked access rejected bad position", "pos", offBoard, "err", err)
	}

	// Pretend the owning context got merged into another one whose ids start
	// at 1000.
	mapper := make(entity.TableMapper, len(placed))
	for _, id := range placed {
		mapper[id] = id + 1000
	}
	dupe := duplicate(c, mapper)

	// Tear down the original, handing every occupant back for cleanup.
	despawned := 0
	for range c.Tiles.Drain() {
		despawned++
	}
	logging.Info("drained original", "despawned", despawned)

	remapped := 0
	for _, cell := range dupe.Tiles.Cells() {
		if id, ok := cell.Value(); ok {
			if !id.Valid() {
				logging.Error("invalid handle after remap", "id", id)
			}
			remapped++
		}
	}
	logging.Info("duplicate ready", "occupied", remapped)

	base.SetStoreVal("last chunk", c.Defname)
}
