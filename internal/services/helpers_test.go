package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"say-to-plan/internal/repository"
	"say-to-plan/internal/repository/memory"
)

var baseTime = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%02d", n)
	}
}

// flakyRepo wraps a memory repository and fails on demand.
type flakyRepo struct {
	*memory.Repository
	failSave bool
	failLoad bool
	saves    int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{Repository: memory.New()}
}

func (r *flakyRepo) Load(ctx context.Context, ownerID string) ([]repository.TaskRecord, error) {
	if r.failLoad {
		return nil, fmt.Errorf("disk unavailable")
	}
	return r.Repository.Load(ctx, ownerID)
}

func (r *flakyRepo) Save(ctx context.Context, ownerID string, records []repository.TaskRecord) error {
	r.saves++
	if r.failSave {
		return fmt.Errorf("disk full")
	}
	return r.Repository.Save(ctx, ownerID, records)
}

func newTestStore(repo repository.Repository, clock *testClock, opts ...StoreOption) *TaskStore {
	base := []StoreOption{WithClock(clock.Now), WithIDGenerator(sequentialIDs())}
	return NewTaskStore(repo, append(base, opts...)...)
}

func ptrTime(t time.Time) *time.Time { return &t }
