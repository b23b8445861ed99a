package commands

import (
	"fmt"

	"github.com/sjlee/krx-insight/pkg/config"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// newCLILogger builds a logger for one-shot commands.
// CLI 출력과 섞이지 않도록 기본은 warn, --verbose면 debug.
func newCLILogger() (*logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.LogFormat = "console"
	if verbose {
		cfg.LogLevel = "debug"
	} else {
		cfg.LogLevel = "warn"
	}

	return logger.New(cfg), nil
}
