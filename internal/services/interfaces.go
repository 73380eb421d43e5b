package services

import (
	"context"
	"strings"
	"time"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
)

// View names a derived projection of the task collection.
type View string

const (
	ViewAll       View = "all"
	ViewPending   View = "pending"
	ViewCompleted View = "completed"
	ViewOverdue   View = "overdue"
	ViewToday     View = "today"
)

// Views lists every view in display order.
var Views = []View{ViewAll, ViewPending, ViewCompleted, ViewOverdue, ViewToday}

// ParseView converts user input to a View. Empty input selects ViewAll.
func ParseView(s string) (View, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ViewAll, nil
	}
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", errors.NewInvalidInputError("view", s, "must be one of all, pending, completed, overdue, today")
}

// TaskService handles the signed-in owner's task collection.
type TaskService interface {
	// Identity lifecycle
	SignIn(ctx context.Context, ownerID string) error
	SignOut(ctx context.Context)
	Owner() string

	// Mutations; each one persists the whole collection
	AddTask(ctx context.Context, description string, due *time.Time) (*domain.Task, error)
	ToggleTask(ctx context.Context, id string) (*domain.Task, error)
	EditTask(ctx context.Context, id, description string, due *time.Time) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)

	// Lookup
	GetTask(id string) (*domain.Task, error)
	ResolveID(prefix string) (string, error)
}

// SearchService projects the collection into views.
type SearchService interface {
	Tasks() []domain.Task
	Pending() []domain.Task
	Completed() []domain.Task
	Overdue() []domain.Task
	DueToday() []domain.Task
	View(view View) []domain.Task
}

// ReportingService summarizes the collection.
type ReportingService interface {
	Stats() domain.Stats
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	SearchService    SearchService
	ReportingService ReportingService
}

// NewServiceContainer exposes one store through every service interface.
func NewServiceContainer(store *TaskStore) *ServiceContainer {
	return &ServiceContainer{
		TaskService:      store,
		SearchService:    store,
		ReportingService: store,
	}
}
