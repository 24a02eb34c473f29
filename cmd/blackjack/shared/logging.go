package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a logger writing human-readable output to stderr,
// keeping stdout free for game output.
func SetupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
