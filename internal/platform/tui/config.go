package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
)

// LogConfigSource resolves the game config the way a run will and logs the
// outcome. A rejected custom config is reported as a warning, since games fall
// back to the built-in defaults without saying so.
func LogConfigSource(logger *log.Logger, path string) (string, error) {
	_, source, err := config.Load(path)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", path, "error", err)
		return source, err
	}
	logger.Debug("config loaded", "source", source)
	return source, nil
}
