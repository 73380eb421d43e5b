package cli

import (
	"context"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute prints the tasks of one view, newest first.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "list", "usage: stp list [all|pending|completed|overdue|today]")
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}
	view, err := services.ParseView(name)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	tasks, err := c.api.ListTasks(view)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		if view == services.ViewAll {
			c.app.printf("No tasks found.\n")
		} else {
			c.app.printf("No %s tasks found.\n", view)
		}
		return nil
	}

	now := timeNow()
	for _, t := range tasks {
		writeTask(c.app.out, t, c.app.config.Time.DisplayFormat, now)
	}
	return nil
}
