package leopard16

import logging "github.com/dep2p/log"

var logger = logging.Logger("leopard16")

func init() {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}

// SetLog redirects this package's log output to filename, optionally also
// echoing to stderr.
func SetLog(filename string, stderr ...bool) {
	useStderr := false
	if len(stderr) > 0 {
		useStderr = stderr[0]
	}
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: useStderr,
		File:   filename,
		Level:  logging.LevelInfo,
	})
}
