package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// WithLogging wraps a command so every run is logged with its duration.
// Failures other than ErrExit are logged as warnings.
func WithLogging(logger *slog.Logger, next Command) Command {
	return loggedCommand{logger: logger, next: next}
}

type loggedCommand struct {
	logger *slog.Logger
	next   Command
}

func (c loggedCommand) Name() string { return c.next.Name() }

func (c loggedCommand) Execute(ctx context.Context) error {
	start := time.Now()
	c.logger.Debug("Command started", "command", c.next.Name())

	err := c.next.Execute(ctx)

	duration := time.Since(start).Milliseconds()
	if err != nil && !errors.Is(err, ErrExit) {
		c.logger.Warn("Command failed",
			"command", c.next.Name(),
			"duration_ms", duration,
			"error", err,
		)
		return err
	}

	c.logger.Debug("Command completed",
		"command", c.next.Name(),
		"duration_ms", duration,
	)
	return err
}
