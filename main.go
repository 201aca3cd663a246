package main

import (
	"os"

	"github.com/MobRulesGames/tilechunk/cmd"
)

func main() {
	cmd.Main(os.Args)
}
