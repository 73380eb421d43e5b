package cli

import (
	"context"
	"strings"

	"say-to-plan/internal/api"
	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
)

// SayCommand captures one utterance, shows the parsed candidate and saves
// it after confirmation.
type SayCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	Yes bool
}

// NewSayCommand creates a new say command handler
func NewSayCommand(app *App) *SayCommand {
	return &SayCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute runs the say command
func (c *SayCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "say", "usage: stp say [--yes]")
	}
	if !c.api.VoiceAvailable() {
		return c.errorHandler.HandleSimple(errors.NewCaptureUnavailableError())
	}

	if c.app.interactive {
		c.app.printf("Listening (%s)... say your task and press Enter.\n", c.app.config.Voice.Locale)
	}

	result, err := c.api.Dictate(ctx)
	if err != nil {
		return c.errorHandler.Handle("capture task", err)
	}
	if result == nil {
		c.app.printf("Capture cancelled.\n")
		return nil
	}

	c.app.printf("Heard: %q\n", result.Transcript)
	candidate := result.Candidate
	writeCandidate(c.app.out, candidate, c.app.config.Time.DisplayFormat, timeNow())

	if !c.Yes {
		if !c.app.interactive {
			c.app.printf("Not saved. Run with --yes to save without confirmation.\n")
			return nil
		}
		var ok bool
		candidate, ok, err = c.confirm(candidate)
		if err != nil {
			return c.errorHandler.Handle("confirm task", err)
		}
		if !ok {
			c.app.printf("Discarded.\n")
			return nil
		}
	}

	task, err := c.api.ConfirmCandidate(ctx, candidate)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}
	c.app.printf("Added task %s: %s\n", shortID(task.ID), task.Description)
	return nil
}

// confirm asks the user to accept, reject or retype the description.
func (c *SayCommand) confirm(candidate domain.ParsedCandidate) (domain.ParsedCandidate, bool, error) {
	c.app.printf("Save this task? [Y/n, or type a new description]: ")
	answer, err := c.app.readLine()
	if err != nil {
		return candidate, false, err
	}

	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return candidate, true, nil
	case "n", "no":
		return candidate, false, nil
	default:
		candidate.Description = answer
		return candidate, true, nil
	}
}
