package cli

import (
	"context"
	"strings"
	"time"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
)

// EditCommand replaces the description and optionally the due date of a task.
type EditCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	Due      string
	ClearDue bool
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the edit command. Without --due or --clear-due the current
// due date is kept.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", `usage: stp edit <id> "new text" [--due YYYY-MM-DD | --clear-due]`)
	}
	if c.Due != "" && c.ClearDue {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("due", c.Due, "--due and --clear-due cannot be combined"))
	}

	current, err := c.api.GetTask(args[0])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	var due *time.Time
	switch {
	case c.ClearDue:
	case c.Due != "":
		if due, err = c.app.parseDue(c.Due); err != nil {
			return c.errorHandler.Handle("edit task", err)
		}
	default:
		due = current.DueDate
	}

	task, err := c.api.EditTask(ctx, current.ID, strings.Join(args[1:], " "), due)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	c.app.printf("Updated task %s: %s\n", shortID(task.ID), task.Description)
	return nil
}
