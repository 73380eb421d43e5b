// Package voice runs single-shot speech capture sessions and turns each
// transcript into a candidate task.
//
// A Controller moves Idle -> Capturing -> Idle on success or cancellation,
// and Capturing -> Error -> Idle when capture fails. Only one session runs
// at a time.
package voice

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"say-to-plan/internal/domain"
	"say-to-plan/internal/errors"
	"say-to-plan/internal/logging"
	"say-to-plan/internal/parser"
)

var (
	// ErrAlreadyCapturing is returned by Start while a session is active.
	ErrAlreadyCapturing = stderrors.New("voice: capture already in progress")
	// ErrNotCapturing is returned by Stop when no session is active.
	ErrNotCapturing = stderrors.New("voice: no capture in progress")
)

// Result is the outcome of one capture session: a candidate or a capture error.
type Result struct {
	Transcript string
	Candidate  domain.ParsedCandidate
	Err        error
}

// StateListener observes transitions. It runs with the controller locked
// and must not call back into it.
type StateListener func(from, to State)

// Controller owns one Source and runs at most one capture session on it.
type Controller struct {
	src       Source
	parse     parser.Func
	available bool
	timeout   time.Duration
	logger    logging.Logger
	listeners []StateListener

	mu      sync.Mutex
	state   State
	session uint64
	cancel  context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithStateListener registers fn for every state transition.
func WithStateListener(fn StateListener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, fn) }
}

// WithLogger sets the logger used for capture diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithCaptureTimeout bounds each session; zero means no bound.
func WithCaptureTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// NewController checks src availability once; the answer never changes afterwards.
func NewController(src Source, parse parser.Func, opts ...Option) *Controller {
	c := &Controller{
		src:    src,
		parse:  parse,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.available = src != nil && src.Available()
	return c
}

// Available reports whether voice capture can be offered at all.
func (c *Controller) Available() bool {
	return c.available
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins one capture session. The returned channel yields at most one
// Result and is then closed; it is closed without a value when the session
// is stopped or ctx is canceled.
func (c *Controller) Start(ctx context.Context) (<-chan Result, error) {
	if !c.available {
		return nil, errors.NewCaptureUnavailableError()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return nil, ErrAlreadyCapturing
	}
	if err := c.transitionLocked(StateCapturing); err != nil {
		return nil, err
	}

	var sctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		sctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		sctx, cancel = context.WithCancel(ctx)
	}
	c.session++
	c.cancel = cancel

	out := make(chan Result, 1)
	go c.run(sctx, cancel, c.session, out)
	return out, nil
}

// Stop cancels the active session without producing a candidate.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCapturing {
		return ErrNotCapturing
	}
	c.cancel()
	c.cancel = nil
	// a stopped session's late result is dropped by run
	c.session++
	return c.transitionLocked(StateIdle)
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, session uint64, out chan<- Result) {
	defer close(out)
	defer cancel()

	text, err := c.src.Listen(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if session != c.session {
		return
	}
	c.cancel = nil

	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.NewCaptureError("no_speech", nil)
	}
	if err != nil && stderrors.Is(err, context.Canceled) {
		c.logger.Debug(ctx, "capture canceled")
		c.moveLocked(ctx, StateIdle)
		return
	}
	if err != nil {
		err = asCaptureError(err)
		c.logger.Warn(ctx, "capture failed", "err", err)
		c.moveLocked(ctx, StateError)
		c.moveLocked(ctx, StateIdle)
		out <- Result{Err: err}
		return
	}

	c.moveLocked(ctx, StateIdle)
	out <- Result{Transcript: text, Candidate: c.parse(text)}
}

func (c *Controller) transitionLocked(to State) error {
	from := c.state
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("voice: disallowed transition %s -> %s", from, to)
	}
	c.state = to
	for _, fn := range c.listeners {
		fn(from, to)
	}
	return nil
}

// moveLocked is transitionLocked for callers that cannot return the error.
func (c *Controller) moveLocked(ctx context.Context, to State) {
	if err := c.transitionLocked(to); err != nil {
		c.logger.Debug(ctx, "state transition rejected", "err", err)
	}
}

func asCaptureError(err error) error {
	if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeCapture) {
		return appErr
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewCaptureError("no_speech", err)
	}
	return errors.NewCaptureError("engine_error", err)
}
