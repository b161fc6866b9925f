package helix

import "os"

// debugMode gates signature population, hot-reload registration, and display
// names. It is resolved once at load time from HELIX_DEBUG; release builds
// set HELIX_DEBUG=0 (or "false") and pay nothing beyond this flag test.
var debugMode = loadDebug()

func loadDebug() bool {
	switch os.Getenv("HELIX_DEBUG") {
	case "0", "false":
		return false
	default:
		return true
	}
}

// Debug reports whether debug-only side effects are enabled.
func Debug() bool {
	return debugMode
}

// SetDebug overrides the load-time debug flag. Intended for tests and
// embedders that resolve their own configuration.
func SetDebug(on bool) {
	debugMode = on
}
