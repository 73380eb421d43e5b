package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("owner", "user-1").Info(context.Background(), "signed in", "tasks", 3)

	out := buf.String()
	assert.Contains(t, out, "owner=user-1")
	assert.Contains(t, out, "tasks=3")
}

func TestNew_DebugSwitch(t *testing.T) {
	t.Setenv("STP_DEBUG", "")
	var quiet bytes.Buffer
	New(&quiet, false).Debug(context.Background(), "hidden")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	New(&verbose, true).Debug(context.Background(), "shown")
	assert.Contains(t, verbose.String(), "msg=shown")

	t.Setenv("STP_DEBUG", "1")
	assert.True(t, DebugEnabled())
	var env bytes.Buffer
	New(&env, false).Debug(context.Background(), "from env")
	assert.Contains(t, env.String(), "from env")
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Info(ctx, "ok")
	log.With("k", "v").Error(ctx, "ok")
}
