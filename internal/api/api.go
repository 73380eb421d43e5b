// Package api is the confirmation layer between callers and the core: it
// turns transcripts and typed text into tasks for the signed-in owner.
package api

import (
	"context"
	"time"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/logging"
	"say-to-plan/internal/parser"
	"say-to-plan/internal/services"
	"say-to-plan/internal/voice"
)

// API defines every operation offered to a host surface.
type API interface {
	// Identity
	SignIn(ctx context.Context, ownerID string) error
	SignOut(ctx context.Context)
	Owner() string

	// Capture and parsing
	VoiceAvailable() bool
	Dictate(ctx context.Context) (*voice.Result, error)
	StopDictation() error
	ParseTranscript(text string) (domain.ParsedCandidate, error)

	// Task creation
	ConfirmCandidate(ctx context.Context, candidate domain.ParsedCandidate) (*domain.Task, error)
	AddManualTask(ctx context.Context, text string, due *time.Time) (*domain.Task, error)

	// Task operations; ids may be unique prefixes
	GetTask(idOrPrefix string) (*domain.Task, error)
	ToggleTask(ctx context.Context, idOrPrefix string) (*domain.Task, error)
	EditTask(ctx context.Context, idOrPrefix, description string, due *time.Time) (*domain.Task, error)
	DeleteTask(ctx context.Context, idOrPrefix string) (*domain.Task, error)
	ListTasks(view services.View) ([]domain.Task, error)
	Stats() (domain.Stats, error)
}

type apiImpl struct {
	services *services.ServiceContainer
	parser   *parser.Parser
	voice    *voice.Controller
	logger   logging.Logger
}

// New creates a new API instance. vc may be nil when no capture source exists.
func New(container *services.ServiceContainer, p *parser.Parser, vc *voice.Controller, logger logging.Logger) API {
	if vc == nil {
		vc = voice.NewController(voice.UnavailableSource{}, p.Parse)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &apiImpl{
		services: container,
		parser:   p,
		voice:    vc,
		logger:   logger,
	}
}

func (a *apiImpl) SignIn(ctx context.Context, ownerID string) error {
	return a.services.TaskService.SignIn(ctx, ownerID)
}

func (a *apiImpl) SignOut(ctx context.Context) {
	a.services.TaskService.SignOut(ctx)
}

func (a *apiImpl) Owner() string {
	return a.services.TaskService.Owner()
}

func (a *apiImpl) VoiceAvailable() bool {
	return a.voice.Available()
}

// Dictate runs one capture session and waits for it. A stopped or canceled
// session returns (nil, nil).
func (a *apiImpl) Dictate(ctx context.Context) (*voice.Result, error) {
	if err := a.requireOwner("dictate a task"); err != nil {
		return nil, err
	}

	ch, err := a.voice.Start(ctx)
	if err != nil {
		return nil, err
	}

	r, ok := <-ch
	if !ok {
		return nil, nil
	}
	if r.Err != nil {
		return nil, r.Err
	}
	a.logger.Debug(ctx, "transcript parsed", "transcript", r.Transcript, "due", r.Candidate.HasDueDate())
	return &r, nil
}

func (a *apiImpl) StopDictation() error {
	return a.voice.Stop()
}

func (a *apiImpl) ParseTranscript(text string) (domain.ParsedCandidate, error) {
	if err := a.requireOwner("parse a transcript"); err != nil {
		return domain.ParsedCandidate{}, err
	}
	return a.parser.Parse(text), nil
}

// ConfirmCandidate turns a (possibly user-edited) candidate into a task.
func (a *apiImpl) ConfirmCandidate(ctx context.Context, candidate domain.ParsedCandidate) (*domain.Task, error) {
	return a.add(ctx, candidate.Description, candidate.DueDate)
}

// AddManualTask stores typed text verbatim; only due sets a deadline.
func (a *apiImpl) AddManualTask(ctx context.Context, text string, due *time.Time) (*domain.Task, error) {
	return a.add(ctx, text, due)
}

func (a *apiImpl) add(ctx context.Context, description string, due *time.Time) (*domain.Task, error) {
	if err := a.requireOwner("add a task"); err != nil {
		return nil, err
	}
	task, err := a.services.TaskService.AddTask(ctx, description, due)
	if err != nil {
		return nil, err
	}
	if task == nil {
		// signed out between the check and the add
		return nil, errors.NewUnauthenticatedError("add a task")
	}
	return task, nil
}

func (a *apiImpl) GetTask(idOrPrefix string) (*domain.Task, error) {
	id, err := a.resolve(idOrPrefix)
	if err != nil {
		return nil, err
	}
	return a.services.TaskService.GetTask(id)
}

func (a *apiImpl) ToggleTask(ctx context.Context, idOrPrefix string) (*domain.Task, error) {
	id, err := a.resolve(idOrPrefix)
	if err != nil {
		return nil, err
	}
	task, err := a.services.TaskService.ToggleTask(ctx, id)
	return orNotFound(id, task, err)
}

func (a *apiImpl) EditTask(ctx context.Context, idOrPrefix, description string, due *time.Time) (*domain.Task, error) {
	id, err := a.resolve(idOrPrefix)
	if err != nil {
		return nil, err
	}
	task, err := a.services.TaskService.EditTask(ctx, id, description, due)
	return orNotFound(id, task, err)
}

// DeleteTask removes a task and returns it as it was before removal.
func (a *apiImpl) DeleteTask(ctx context.Context, idOrPrefix string) (*domain.Task, error) {
	task, err := a.GetTask(idOrPrefix)
	if err != nil {
		return nil, err
	}
	removed, err := a.services.TaskService.DeleteTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, errors.NewNotFoundError("task", task.ID)
	}
	return task, nil
}

func (a *apiImpl) ListTasks(view services.View) ([]domain.Task, error) {
	if err := a.requireOwner("list tasks"); err != nil {
		return nil, err
	}
	return a.services.SearchService.View(view), nil
}

func (a *apiImpl) Stats() (domain.Stats, error) {
	if err := a.requireOwner("view statistics"); err != nil {
		return domain.Stats{}, err
	}
	return a.services.ReportingService.Stats(), nil
}

func (a *apiImpl) requireOwner(operation string) error {
	if a.services.TaskService.Owner() == "" {
		return errors.NewUnauthenticatedError(operation)
	}
	return nil
}

func (a *apiImpl) resolve(idOrPrefix string) (string, error) {
	if err := a.requireOwner("change tasks"); err != nil {
		return "", err
	}
	return a.services.TaskService.ResolveID(idOrPrefix)
}

// orNotFound reports a store no-op on an unknown id as not found.
func orNotFound(id string, task *domain.Task, err error) (*domain.Task, error) {
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.NewNotFoundError("task", id)
	}
	return task, nil
}
