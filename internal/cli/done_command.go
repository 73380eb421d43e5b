package cli

import (
	"context"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
)

// DoneCommand toggles completion of one task.
type DoneCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "done", "usage: stp done <id>")
	}

	task, err := c.api.ToggleTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	if task.Completed {
		c.app.printf("Completed: %s\n", task.Description)
	} else {
		c.app.printf("Reopened: %s\n", task.Description)
	}
	return nil
}
