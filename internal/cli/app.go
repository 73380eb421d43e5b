package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"say-to-plan/internal/api"
	"say-to-plan/internal/config"
	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/logging"
	"say-to-plan/internal/parser"
	"say-to-plan/internal/repository"
	"say-to-plan/internal/services"
	"say-to-plan/internal/voice"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// RepositoryFactory opens the repository selected for cfg.
type RepositoryFactory func(cfg *config.Config) (repository.Repository, error)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	repo     repository.Repository
	registry *CommandRegistry

	out         io.Writer
	errOut      io.Writer
	in          *bufio.Reader
	interactive bool
}

// NewApp wires repository, store, parser and voice controller for cfg.
// Transcripts for the say command are read from in.
func NewApp(ctx context.Context, cfg *config.Config, repo repository.Repository, in io.Reader, out, errOut io.Writer) (*App, error) {
	app := &App{
		config:      cfg,
		repo:        repo,
		out:         out,
		errOut:      errOut,
		in:          bufio.NewReader(in),
		interactive: isTerminal(in),
	}

	logger := logging.New(errOut, cfg.Application.Verbose)
	if insp, ok := repo.(repository.Inspector); ok {
		describeStorage(ctx, logger, insp)
	}

	store := services.NewTaskStore(repo,
		services.WithClock(timeNow),
		services.WithLogger(logger),
		services.WithDescriptionMaxLength(cfg.Validation.DescriptionMaxLength),
		services.WithPersistWarning(app.persistWarning),
	)
	p := parser.New(parser.WithClock(timeNow))

	var src voice.Source = voice.UnavailableSource{}
	if cfg.Voice.Enabled {
		src = voice.NewReaderSource(app.in)
	}
	vc := voice.NewController(src, p.Parse,
		voice.WithCaptureTimeout(cfg.Voice.CaptureTimeout),
		voice.WithLogger(logger),
	)

	app.api = api.New(services.NewServiceContainer(store), p, vc, logger)
	app.registry = NewCommandRegistry(app)

	if cfg.Identity.User != "" {
		if err := app.api.SignIn(ctx, cfg.Identity.User); err != nil {
			return nil, NewErrorHandler().Handle("sign in", err)
		}
	}
	return app, nil
}

func describeStorage(ctx context.Context, logger logging.Logger, insp repository.Inspector) {
	version, err := insp.SchemaVersion(ctx)
	if err != nil {
		logger.Debug(ctx, "schema version unavailable", "err", err)
		return
	}
	owners, err := insp.Owners(ctx)
	if err != nil {
		logger.Debug(ctx, "owner listing unavailable", "err", err)
		return
	}
	logger.Debug(ctx, "storage ready", "schema_version", version, "collections", len(owners))
}

// Close releases the repository.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// Run executes a registered command by name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) persistWarning(err error) {
	fmt.Fprintf(a.errOut, "warning: your change is kept for this session but could not be saved: %s\n", errors.GetUserMessage(err))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine reads one trimmed answer from the input.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseDue parses a --due value as a calendar date in the configured input format.
func (a *App) parseDue(value string) (*time.Time, error) {
	due, err := domain.ParseDueDate(strings.TrimSpace(value), a.config.Time.DateInputFormat, time.Local)
	if err != nil {
		return nil, errors.NewInvalidInputError("due", value, "expected a date like "+a.config.Time.DateInputFormat)
	}
	return &due, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
