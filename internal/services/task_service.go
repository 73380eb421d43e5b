// Package services holds the task store: the in-memory collection of the
// signed-in owner, its mutations and the projections derived from it.
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/logging"
	"say-to-plan/internal/repository"
	"say-to-plan/internal/validation"
)

// TaskStore is the single owner of the task collection. Every mutation is
// applied in memory first and then saved through the repository. A failed
// save is reported as a warning; the in-memory state stays authoritative.
type TaskStore struct {
	mu sync.Mutex

	repo      repository.Repository
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
	logger    logging.Logger
	now       func() time.Time
	newID     func() string
	onWarning func(error)

	owner string
	// newest first; may hold records of other owners found in the partition
	tasks []domain.Task
}

var _ TaskService = (*TaskStore)(nil)

// StoreOption configures a TaskStore.
type StoreOption func(*TaskStore)

// WithClock overrides the time source used for createdAt and views.
func WithClock(now func() time.Time) StoreOption {
	return func(s *TaskStore) { s.now = now }
}

// WithIDGenerator overrides task id generation.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *TaskStore) { s.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) StoreOption {
	return func(s *TaskStore) { s.logger = l }
}

// WithPersistWarning registers fn to be called, outside the store lock,
// whenever saving the collection fails.
func WithPersistWarning(fn func(error)) StoreOption {
	return func(s *TaskStore) { s.onWarning = fn }
}

// WithDescriptionMaxLength bounds accepted descriptions.
func WithDescriptionMaxLength(n int) StoreOption {
	return func(s *TaskStore) { s.validator = validation.NewTaskValidator(n) }
}

// NewTaskStore creates a signed-out store backed by repo.
func NewTaskStore(repo repository.Repository, opts ...StoreOption) *TaskStore {
	s := &TaskStore{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTaskValidator(0),
		logger:    logging.Nop(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn binds ownerID and loads its partition, replacing whatever was held.
// If loading fails the store is left signed out.
func (s *TaskStore) SignIn(ctx context.Context, ownerID string) error {
	if err := s.validator.ValidateOwnerID(ownerID); err != nil {
		return errors.NewValidationError("invalid owner id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = ""
	s.tasks = nil

	records, err := s.repo.Load(ctx, ownerID)
	if err != nil {
		s.logger.Warn(ctx, "load task collection failed", "owner", ownerID, "err", err)
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewStorageError("load tasks", err)
	}

	s.owner = ownerID
	s.tasks = s.mapper.FromRecordSlice(records)
	s.logger.Debug(ctx, "signed in", "owner", ownerID, "tasks", len(s.tasks))
	return nil
}

// SignOut discards the in-memory collection. Storage is left untouched.
func (s *TaskStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner != "" {
		s.logger.Debug(ctx, "signed out", "owner", s.owner)
	}
	s.owner = ""
	s.tasks = nil
}

// Owner returns the signed-in owner, or "" when signed out.
func (s *TaskStore) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// AddTask inserts a new task at the front of the collection. Without a
// signed-in owner it does nothing and returns (nil, nil).
func (s *TaskStore) AddTask(ctx context.Context, description string, due *time.Time) (*domain.Task, error) {
	s.mu.Lock()
	if s.owner == "" {
		s.mu.Unlock()
		s.logger.Debug(ctx, "add ignored: no owner")
		return nil, nil
	}
	if err := s.validator.ValidateTaskForCreation(description); err != nil {
		s.mu.Unlock()
		return nil, errors.NewValidationError("invalid task description", err)
	}

	task := domain.NewTask(s.uniqueIDLocked(), s.owner, description, due, s.now())
	s.tasks = append([]domain.Task{task}, s.tasks...)
	saveErr := s.saveLocked(ctx)
	s.mu.Unlock()

	s.warn(saveErr)
	result := task.Clone()
	return &result, nil
}

// ToggleTask flips the completion flag. An unknown id is a no-op.
func (s *TaskStore) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.Lock()
	i, err := s.indexLocked(id, "toggle")
	if err != nil || i < 0 {
		s.mu.Unlock()
		return nil, err
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	result := s.tasks[i].Clone()
	saveErr := s.saveLocked(ctx)
	s.mu.Unlock()

	s.warn(saveErr)
	return &result, nil
}

// EditTask replaces description and due date. An unknown id is a no-op.
func (s *TaskStore) EditTask(ctx context.Context, id, description string, due *time.Time) (*domain.Task, error) {
	if err := s.validator.ValidateTaskForUpdate(id, description); err != nil {
		return nil, errors.NewValidationError("invalid task update", err)
	}

	s.mu.Lock()
	i, err := s.indexLocked(id, "edit")
	if err != nil || i < 0 {
		s.mu.Unlock()
		return nil, err
	}

	edited := domain.NewTask(s.tasks[i].ID, s.tasks[i].OwnerID, description, due, s.tasks[i].CreatedAt)
	edited.Completed = s.tasks[i].Completed
	s.tasks[i] = edited
	saveErr := s.saveLocked(ctx)
	s.mu.Unlock()

	s.warn(saveErr)
	result := edited.Clone()
	return &result, nil
}

// DeleteTask removes a task and reports whether one was removed.
func (s *TaskStore) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i, err := s.indexLocked(id, "delete")
	if err != nil || i < 0 {
		s.mu.Unlock()
		return false, err
	}

	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	saveErr := s.saveLocked(ctx)
	s.mu.Unlock()

	s.warn(saveErr)
	return true, nil
}

// GetTask returns the owner's task with the given id.
func (s *TaskStore) GetTask(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id && s.visibleLocked(t) {
			c := t.Clone()
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("task", id)
}

// ResolveID expands a unique id prefix to the full id of one of the owner's tasks.
func (s *TaskStore) ResolveID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errors.NewInvalidInputError("task_id", prefix, "task id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found []string
	for _, t := range s.tasks {
		if !s.visibleLocked(t) {
			continue
		}
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			found = append(found, t.ID)
		}
	}

	switch len(found) {
	case 0:
		return "", errors.NewNotFoundError("task", prefix)
	case 1:
		return found[0], nil
	default:
		return "", errors.NewInvalidInputError("task_id", prefix, "matches more than one task")
	}
}

// indexLocked finds id in the collection, returning -1 when absent.
// Tasks of another owner are never mutable.
func (s *TaskStore) indexLocked(id, operation string) (int, error) {
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if t.OwnerID != s.owner {
			return -1, errors.NewPermissionError(operation, "task "+id).WithContext("owner", s.owner)
		}
		return i, nil
	}
	return -1, nil
}

// visibleLocked reports whether t belongs to the signed-in owner and is
// well formed. Other records stay in the partition untouched.
func (s *TaskStore) visibleLocked(t domain.Task) bool {
	return t.OwnerID == s.owner && t.IsValid()
}

func (s *TaskStore) uniqueIDLocked() string {
	for {
		id := s.newID()
		taken := false
		for _, t := range s.tasks {
			if t.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// saveLocked persists the whole partition, logging failures.
func (s *TaskStore) saveLocked(ctx context.Context) error {
	err := s.repo.Save(ctx, s.owner, s.mapper.ToRecordSlice(s.tasks))
	if err != nil {
		s.logger.Warn(ctx, "save task collection failed; keeping in-memory changes", "owner", s.owner, "err", err)
	}
	return err
}

func (s *TaskStore) warn(err error) {
	if err != nil && s.onWarning != nil {
		s.onWarning(err)
	}
}

// snapshot returns copies of the owner's tasks and the current instant.
func (s *TaskStore) snapshot() ([]domain.Task, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.visibleLocked(t) {
			out = append(out, t.Clone())
		}
	}
	return out, s.now()
}
