package cli

import (
	"context"
	"strings"

	"say-to-plan/internal/api"
	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	Due   string
	Parse bool
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute adds the joined args as a task. Text is stored verbatim unless
// Parse is set; Due always wins over a parsed date.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", `usage: stp add "your task" [--due YYYY-MM-DD] [--parse]`)
	}
	text := strings.Join(args, " ")

	candidate := domain.ParsedCandidate{Description: text}
	if c.Parse {
		parsed, err := c.api.ParseTranscript(text)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		candidate = parsed
	}

	if c.Due != "" {
		due, err := c.app.parseDue(c.Due)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		candidate.DueDate = due
	}

	var task *domain.Task
	var err error
	if c.Parse {
		task, err = c.api.ConfirmCandidate(ctx, candidate)
	} else {
		task, err = c.api.AddManualTask(ctx, candidate.Description, candidate.DueDate)
	}
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %s: %s\n", shortID(task.ID), task.Description)
	return nil
}
