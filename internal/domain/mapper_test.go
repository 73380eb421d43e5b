package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"say-to-plan/internal/repository"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	due := EndOfDay(created)
	task := Task{ID: "a1", Description: "Call mom", CreatedAt: created, DueDate: &due, OwnerID: "alice"}

	result := mapper.ToRecord(task)

	assert.Equal(t, repository.TaskRecord{
		ID: "a1", Description: "Call mom", CreatedAt: created, DueDate: &due, OwnerID: "alice",
	}, result)
	require.NotNil(t, result.DueDate)
	assert.NotSame(t, task.DueDate, result.DueDate)
}

func TestTaskMapper_FromRecord(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	record := repository.TaskRecord{ID: "a1", Description: "Buy milk", Completed: true, CreatedAt: created, OwnerID: "alice"}

	result := mapper.FromRecord(record)

	assert.Equal(t, Task{ID: "a1", Description: "Buy milk", Completed: true, CreatedAt: created, OwnerID: "alice"}, result)
	assert.Nil(t, result.DueDate)
}

func TestTaskMapper_SlicesKeepOrder(t *testing.T) {
	mapper := NewTaskMapper()
	tasks := []Task{
		{ID: "b", Description: "second", OwnerID: "alice"},
		{ID: "a", Description: "first", OwnerID: "alice"},
	}

	records := mapper.ToRecordSlice(tasks)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID)

	back := mapper.FromRecordSlice(records)
	assert.Equal(t, tasks, back)

	assert.Empty(t, mapper.FromRecordSlice(nil))
}
