// Package task runs the asynchronous action behind a control (a click that
// returns work to await) as a bubbletea command whose lifetime is bound to the
// component that started it.
package task

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Func is the caller-supplied action. It should return promptly once ctx is done.
type Func func(ctx context.Context) error

// DoneMsg reports the outcome of a task started by a Runner.
type DoneMsg struct {
	ID        string
	Err       error
	Cancelled bool
}

// Runner allows at most one outstanding task per component. All methods are
// meant to be called from the bubbletea update loop.
type Runner struct {
	lifetime context.Context
	stop     context.CancelFunc

	pendingID string
	cancel    context.CancelFunc
	closed    bool
}

// NewRunner creates a runner whose tasks are cancelled when parent is done or
// when Close is called.
func NewRunner(parent context.Context) *Runner {
	if parent == nil {
		parent = context.Background()
	}
	lifetime, stop := context.WithCancel(parent)
	return &Runner{lifetime: lifetime, stop: stop}
}

// Start launches fn unless a task is already pending or the runner is closed.
// The returned command delivers a DoneMsg when fn returns.
func (r *Runner) Start(fn Func) (tea.Cmd, bool) {
	if fn == nil || r.closed || r.pendingID != "" {
		return nil, false
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(r.lifetime)
	r.pendingID = id
	r.cancel = cancel

	return func() tea.Msg {
		err := fn(ctx)
		return DoneMsg{ID: id, Err: err, Cancelled: ctx.Err() != nil}
	}, true
}

// Pending reports whether a task is outstanding.
func (r *Runner) Pending() bool {
	return r.pendingID != ""
}

// PendingID returns the id of the outstanding task.
func (r *Runner) PendingID() string {
	return r.pendingID
}

// Finish accepts a DoneMsg. It returns false for messages from tasks this
// runner no longer tracks (stale, or delivered after Close); callers must not
// update state in that case.
func (r *Runner) Finish(msg DoneMsg) bool {
	if r.closed || msg.ID == "" || msg.ID != r.pendingID {
		return false
	}
	r.cancel()
	r.pendingID = ""
	r.cancel = nil
	return true
}

// Cancel aborts the outstanding task. Its DoneMsg will be ignored.
func (r *Runner) Cancel() {
	if r.cancel != nil {
		r.cancel()
	}
	r.pendingID = ""
	r.cancel = nil
}

// Close cancels everything and makes the runner inert. Call on unmount.
func (r *Runner) Close() {
	r.Cancel()
	r.closed = true
	r.stop()
}

// Closed reports whether Close was called.
func (r *Runner) Closed() bool {
	return r.closed
}
