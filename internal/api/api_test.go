package api

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/parser"
	"say-to-plan/internal/repository/memory"
	"say-to-plan/internal/services"
	"say-to-plan/internal/voice"
)

var now = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newTestAPI(t *testing.T, transcripts string) API {
	t.Helper()
	store := services.NewTaskStore(memory.New(), services.WithClock(clock))
	p := parser.New(parser.WithClock(clock))

	var vc *voice.Controller
	if transcripts != "" {
		vc = voice.NewController(voice.NewReaderSource(strings.NewReader(transcripts)), p.Parse)
	}
	a := New(services.NewServiceContainer(store), p, vc, nil)
	require.NoError(t, a.SignIn(context.Background(), "alice"))
	return a
}

func TestSignedOutOperationsRequireOwner(t *testing.T) {
	a := newTestAPI(t, "")
	ctx := context.Background()
	a.SignOut(ctx)
	assert.Equal(t, "", a.Owner())

	_, err := a.ParseTranscript("buy milk")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
	_, err = a.AddManualTask(ctx, "buy milk", nil)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
	_, err = a.ListTasks(services.ViewAll)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
	_, err = a.Stats()
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
	_, err = a.ToggleTask(ctx, "x")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
	_, err = a.Dictate(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthenticated))
}

func TestParseAndConfirm(t *testing.T) {
	a := newTestAPI(t, "")
	ctx := context.Background()

	candidate, err := a.ParseTranscript("remind me to call mom tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "Call mom", candidate.Description)

	candidate.Description = "Call mom and dad"
	task, err := a.ConfirmCandidate(ctx, candidate)
	require.NoError(t, err)
	assert.Equal(t, "Call mom and dad", task.Description)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, domain.EndOfDayAfter(now, 1), *task.DueDate)

	_, err = a.ConfirmCandidate(ctx, domain.ParsedCandidate{Description: "   "})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestAddManualTask_IsVerbatim(t *testing.T) {
	a := newTestAPI(t, "")

	task, err := a.AddManualTask(context.Background(), "add milk tomorrow", nil)
	require.NoError(t, err)
	assert.Equal(t, "add milk tomorrow", task.Description)
	assert.Nil(t, task.DueDate)
}

func TestDictate(t *testing.T) {
	a := newTestAPI(t, "create a grocery list today\n\n")
	ctx := context.Background()
	require.True(t, a.VoiceAvailable())

	r, err := a.Dictate(ctx)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Grocery list", r.Candidate.Description)
	require.NotNil(t, r.Candidate.DueDate)
	assert.Equal(t, domain.EndOfDay(now), *r.Candidate.DueDate)

	_, err = a.Dictate(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCapture))
}

func TestDictate_Unavailable(t *testing.T) {
	a := newTestAPI(t, "")

	assert.False(t, a.VoiceAvailable())
	_, err := a.Dictate(context.Background())
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCaptureUnavailable))
	assert.ErrorIs(t, a.StopDictation(), voice.ErrNotCapturing)
}

func TestTaskOperationsByPrefix(t *testing.T) {
	a := newTestAPI(t, "")
	ctx := context.Background()

	task, err := a.AddManualTask(ctx, "Buy milk", nil)
	require.NoError(t, err)
	prefix := task.ID[:8]

	toggled, err := a.ToggleTask(ctx, prefix)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	due := domain.EndOfDayAfter(now, 2)
	edited, err := a.EditTask(ctx, prefix, "Buy oat milk", &due)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", edited.Description)
	assert.True(t, edited.Completed)

	completed, err := a.ListTasks(services.ViewCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	stats, err := a.Stats()
	require.NoError(t, err)
	assert.Equal(t, 100, stats.CompletionRate)

	deleted, err := a.DeleteTask(ctx, prefix)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	_, err = a.GetTask(prefix)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	_, err = a.ToggleTask(ctx, prefix)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
