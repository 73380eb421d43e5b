package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		input    string
		expected View
		wantErr  bool
	}{
		{input: "", expected: ViewAll},
		{input: "all", expected: ViewAll},
		{input: " Pending ", expected: ViewPending},
		{input: "completed", expected: ViewCompleted},
		{input: "OVERDUE", expected: ViewOverdue},
		{input: "today", expected: ViewToday},
		{input: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseView(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestFilterTasks(t *testing.T) {
	now := baseTime
	past := now.Add(-time.Hour)
	tasks := []domain.Task{
		{ID: "overdue", DueDate: &past},
		{ID: "done-overdue", Completed: true, DueDate: &past},
		{ID: "later-today", DueDate: ptrTime(domain.EndOfDay(now))},
		{ID: "tomorrow", DueDate: ptrTime(domain.EndOfDayAfter(now, 1))},
		{ID: "no-date"},
	}

	ids := func(ts []domain.Task) []string {
		out := make([]string, 0, len(ts))
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"overdue", "done-overdue", "later-today", "tomorrow", "no-date"}, ids(FilterTasks(tasks, ViewAll, now)))
	assert.Equal(t, []string{"overdue", "later-today", "tomorrow", "no-date"}, ids(FilterTasks(tasks, ViewPending, now)))
	assert.Equal(t, []string{"done-overdue"}, ids(FilterTasks(tasks, ViewCompleted, now)))
	assert.Equal(t, []string{"overdue"}, ids(FilterTasks(tasks, ViewOverdue, now)))
	assert.Equal(t, []string{"overdue", "later-today"}, ids(FilterTasks(tasks, ViewToday, now)))
}

func TestOverdueView_FollowsCompletion(t *testing.T) {
	store, _, clock := signedInStore(t)
	ctx := context.Background()

	task, err := store.AddTask(ctx, "Pay rent", ptrTime(baseTime.Add(time.Hour)))
	require.NoError(t, err)
	assert.Empty(t, store.Overdue())

	clock.Advance(2 * time.Hour)
	require.Len(t, store.Overdue(), 1)

	_, err = store.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, store.Overdue())
}

func TestViewsReturnCopies(t *testing.T) {
	store, _, _ := signedInStore(t)
	ctx := context.Background()
	_, err := store.AddTask(ctx, "Buy milk", ptrTime(domain.EndOfDay(baseTime)))
	require.NoError(t, err)

	tasks := store.Tasks()
	tasks[0].Description = "changed"
	*tasks[0].DueDate = time.Time{}

	again := store.DueToday()
	require.Len(t, again, 1)
	assert.Equal(t, "Buy milk", again[0].Description)
	assert.Equal(t, domain.EndOfDay(baseTime), *again[0].DueDate)
}
