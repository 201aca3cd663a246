package logtesting

import (
	"bytes"
	"strings"

	"github.com/MobRulesGames/tilechunk/logging"
)

// Runs 'fn' with all logging output captured and returns the emitted lines.
func CollectOutput(fn func()) []string {
	buf := &bytes.Buffer{}
	reset := logging.Redirect(buf)
	defer reset()

	fn()

	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}
