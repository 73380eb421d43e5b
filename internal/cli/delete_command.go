package cli

import (
	"context"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: stp delete <id>")
	}

	task, err := c.api.DeleteTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.printf("Deleted task: %s\n", task.Description)
	return nil
}
