package logging

import (
	"os"
)

// DebugEnabled returns true if debug logging is forced via the TM_DEBUG
// environment variable. It overrides the configured log level, which is
// handy when a misbehaving config is the thing being debugged.
func DebugEnabled() bool {
	return os.Getenv("TM_DEBUG") != ""
}
