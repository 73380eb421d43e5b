package cli

import (
	"context"
	"strings"

	"say-to-plan/internal/api"
	"say-to-plan/internal/errors"
)

// ParseCommand shows what a transcript would become without saving it.
type ParseCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewParseCommand creates a new parse command handler
func NewParseCommand(app *App) *ParseCommand {
	return &ParseCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the parse command
func (c *ParseCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "parse", `usage: stp parse "spoken text"`)
	}

	candidate, err := c.api.ParseTranscript(strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("parse transcript", err)
	}

	writeCandidate(c.app.out, candidate, c.app.config.Time.DisplayFormat, timeNow())
	return nil
}
