package cli

import (
	"context"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
)

// StatsCommand prints the dashboard counters.
type StatsCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "stats", "usage: stp stats")
	}

	stats, err := c.api.Stats()
	if err != nil {
		return c.errorHandler.Handle("load statistics", err)
	}

	c.app.printf("Total:       %d\n", stats.Total)
	c.app.printf("Pending:     %d\n", stats.Pending)
	c.app.printf("Completed:   %d\n", stats.Completed)
	c.app.printf("Overdue:     %d\n", stats.Overdue)
	c.app.printf("Due today:   %d\n", stats.DueToday)
	c.app.printf("Completion:  %d%%\n", stats.CompletionRate)
	return nil
}
