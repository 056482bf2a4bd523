// Package gdbmi implements a client for the GDB/LLDB Machine Interface: a
// line-oriented text protocol spoken over a debugger's stdin/stdout for
// driving it programmatically (breakpoints, execution control, stack and
// variable inspection) and observing its asynchronous state changes.
package gdbmi

import (
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/schreinerhq/gdbmi/internal/event"
	"github.com/schreinerhq/gdbmi/internal/mi"
	"github.com/schreinerhq/gdbmi/ptybridge"
)

// Debugger selects which MI dialect a Session is driving. LLDB's MI layer
// omits some fields GDB always sends (thread ids on thread-created, for
// instance) and never emits a function-finished stop reason; Session
// consults this to decide what it may assume about a response.
type Debugger int

const (
	DebuggerGDB Debugger = iota
	DebuggerLLDB
)

// Session is the façade over one running debugger process speaking MI.
// It owns the command queue and the typed event subscription surface;
// every exported method on it (in breakpoints.go, exec.go, stack.go,
// watch.go, data.go, disasm.go, threads.go) submits one MI command and
// extracts its typed result.
type Session struct {
	q        *queue
	log      *zap.Logger
	debugger Debugger
	remote   bool

	ptyMu sync.Mutex
	pty   *ptybridge.Terminal
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger injects a *zap.Logger. The default is zap.NewNop(), matching
// the ambient logging convention used throughout this module.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithDebugger tells the Session which MI dialect it is driving. The
// default is DebuggerGDB.
func WithDebugger(d Debugger) Option {
	return func(s *Session) { s.debugger = d }
}

// NewSession constructs a Session bound to in (the debugger's stdout) and
// out (its stdin). The caller is responsible for spawning the debugger
// process with "--interpreter=mi" (or equivalent) and wiring its pipes
// here; NewSession only starts the read/dispatch loop.
func NewSession(in io.ReadCloser, out io.Writer, opts ...Option) *Session {
	s := &Session{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.q = newQueue(s.log)
	s.q.start(in, out)
	return s
}

// Logger returns the logger this Session was constructed with.
func (s *Session) Logger() *zap.Logger { return s.log }

// Subscribe registers fn to be called synchronously for every event the
// session observes. Events parsed from the debugger's output arrive on the
// session's single reader goroutine; TARGET_OUTPUT events read from a local
// inferior pseudoterminal arrive on that terminal's own reader goroutine.
// Subscribers must not block or call back into the Session; doing so
// would deadlock the single reader goroutine.
func (s *Session) Subscribe(fn func(event.Event)) (unsubscribe func()) {
	return s.q.subscribe(fn)
}

// CanEmitFunctionFinishedNotification reports whether this dialect ever
// sends reason="function-finished" on a stop. LLDB-MI does not model it;
// a caller of StepOut that wants to detect completion by watching for a
// FunctionFinished event, rather than just any stop, should consult this
// rather than assuming GDB behavior universally.
func (s *Session) CanEmitFunctionFinishedNotification() bool {
	return s.debugger == DebuggerGDB
}

// End shuts the session down. When notifyDebugger is true it first asks
// the debugger to quit ("gdb-exit") and waits for that to resolve one way
// or another before closing the transport; every command still queued at
// that point fails with a session-ended error.
func (s *Session) End(notifyDebugger bool) error {
	s.ptyMu.Lock()
	pty := s.pty
	s.ptyMu.Unlock()
	err := s.q.end(notifyDebugger)
	if pty != nil {
		_ = pty.Close()
	}
	return err
}

// RawCommand submits body verbatim (without a token) and returns the raw
// result class and tuple, bypassing the typed façade. It exists for
// reference tooling and tests that need to exercise a command this
// package's catalogue does not yet wrap.
func (s *Session) RawCommand(body string) (mi.ResultClass, mi.Mapping, error) {
	return s.submit(body)
}

// submit sends body (without a token) and returns its result tuple, or an
// error: *CommandFailed if the debugger answered "^error", or the
// session-ended sentinel if the transport closed first.
func (s *Session) submit(body string) (mi.ResultClass, mi.Mapping, error) {
	class, data, err := s.q.submit(body)
	if err != nil {
		return "", nil, err
	}
	return class, mi.ToMapping(data), nil
}

// submitDone is submit for the common case where the caller only cares
// about the resulting tuple, not which non-error class it carried.
func (s *Session) submitDone(body string) (mi.Mapping, error) {
	_, m, err := s.submit(body)
	if err != nil {
		return nil, err
	}
	return m, nil
}
