package voice

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"sync"

	"say-to-plan/internal/errors"
)

// Source is a single-shot speech engine: each Listen call captures one
// utterance and returns its best transcript.
type Source interface {
	// Available reports whether capture is supported at all on this platform.
	Available() bool
	Listen(ctx context.Context) (string, error)
}

// ReaderSource stands in for a speech engine by reading one line per utterance.
// At most one read is in flight. A line read after its session was canceled
// is kept for the next Listen instead of being dropped.
type ReaderSource struct {
	r *bufio.Reader

	mu      sync.Mutex
	reading bool
	lines   chan readResult
}

type readResult struct {
	text string
	err  error
}

// NewReaderSource reads utterances from r. If r is a *bufio.Reader it is used
// directly, so callers can keep reading the same stream between captures.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r), lines: make(chan readResult, 1)}
}

// Available is always true; the reader is the engine.
func (s *ReaderSource) Available() bool { return true }

// Listen returns the next line without its line ending. A blank line is
// returned as "" and is reported by the controller as no speech.
func (s *ReaderSource) Listen(ctx context.Context) (string, error) {
	s.mu.Lock()
	if !s.reading && len(s.lines) == 0 {
		s.reading = true
		go s.readLine()
	}
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-s.lines:
		if stderrors.Is(l.err, io.EOF) {
			return "", errors.NewCaptureError("no_speech", l.err)
		}
		return l.text, l.err
	}
}

func (s *ReaderSource) readLine() {
	text, err := s.r.ReadString('\n')
	if stderrors.Is(err, io.EOF) && text != "" {
		err = nil
	}

	s.mu.Lock()
	s.reading = false
	s.lines <- readResult{text: strings.TrimRight(text, "\r\n"), err: err}
	s.mu.Unlock()
}

// UnavailableSource is used where no speech engine exists.
type UnavailableSource struct{}

// Available is always false.
func (UnavailableSource) Available() bool { return false }

// Listen always fails with a capture_unavailable error.
func (UnavailableSource) Listen(context.Context) (string, error) {
	return "", errors.NewCaptureUnavailableError()
}
