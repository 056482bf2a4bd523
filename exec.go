package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/event"
	"github.com/schreinerhq/gdbmi/ptybridge"
)

// SetExecutableFile tells the debugger which binary to load symbols from
// and (for local targets) to run.
func (s *Session) SetExecutableFile(path string) error {
	_, err := s.submitDone("file-exec-and-symbols " + quote(path))
	return err
}

// SetInferiorArguments sets the argument string passed to the inferior on
// the next exec-run.
func (s *Session) SetInferiorArguments(args string) error {
	_, err := s.submitDone("exec-arguments " + args)
	return err
}

// ConnectToRemoteTarget connects to a remote gdbserver-style stub at addr
// (host:port). Once connected, StartInferior/StartAllInferiors no longer
// auto-allocate a local pseudoterminal: the inferior's stdio lives on the
// remote end.
func (s *Session) ConnectToRemoteTarget(addr string) error {
	_, err := s.submitDone("target-select remote " + addr)
	if err != nil {
		return err
	}
	s.remote = true
	return nil
}

// SetInferiorTerminal allocates a pseudoterminal for a local inferior's
// stdio, tells the debugger to use it, and forwards everything read from
// its master end as TARGET_OUTPUT events. It is a no-op for sessions
// driving a remote target.
func (s *Session) SetInferiorTerminal() error {
	if s.remote {
		return nil
	}
	term, err := ptybridge.New()
	if err != nil {
		return fmt.Errorf("gdbmi: allocating inferior terminal: %w", err)
	}
	s.ptyMu.Lock()
	old := s.pty
	s.pty = term
	s.ptyMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	if _, err := s.submitDone("inferior-tty-set " + term.SlaveName()); err != nil {
		return err
	}
	s.forwardInferiorOutput(term)
	return nil
}

// forwardInferiorOutput reads term's master end on its own goroutine until
// it closes, dispatching each chunk read as a TARGET_OUTPUT event. It runs
// independently of the command queue's reader since pty reads block on
// their own schedule.
func (s *Session) forwardInferiorOutput(term *ptybridge.Terminal) {
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := term.Read(buf)
			if n > 0 {
				s.q.dispatch(event.Event{Kind: event.KindTargetOutput, Payload: string(buf[:n])})
			}
			if err != nil {
				return
			}
		}
	}()
}

// InferiorTerminal returns the pseudoterminal allocated by a prior
// SetInferiorTerminal call, or nil if none was allocated (remote targets,
// or a session that never started a local inferior).
func (s *Session) InferiorTerminal() *ptybridge.Terminal {
	s.ptyMu.Lock()
	defer s.ptyMu.Unlock()
	return s.pty
}

// ensureLocalPty allocates and wires up an inferior pseudoterminal before a
// GDB session starts a local inferior, per the GDB-local behavior: LLDB
// sessions and any session already connected to a remote target skip this
// entirely, and a session that already has a pty (from a prior start, or a
// caller's own SetInferiorTerminal call) does not get a second one.
func (s *Session) ensureLocalPty() error {
	if s.debugger != DebuggerGDB || s.remote {
		return nil
	}
	s.ptyMu.Lock()
	has := s.pty != nil
	s.ptyMu.Unlock()
	if has {
		return nil
	}
	return s.SetInferiorTerminal()
}

// StartInferior begins execution of thread group groupID ("" for the
// default group), optionally stopping at the first instruction of main.
func (s *Session) StartInferior(groupID string, stopAtMain bool) error {
	if err := s.ensureLocalPty(); err != nil {
		return err
	}
	c := newCmd("exec-run")
	if groupID != "" {
		c.optVal("--thread-group", groupID)
	}
	c.optWhen(stopAtMain, "--start")
	_, err := s.submitDone(c.body())
	return err
}

// StartAllInferiors begins execution of every inferior the debugger is
// managing.
func (s *Session) StartAllInferiors() error {
	if err := s.ensureLocalPty(); err != nil {
		return err
	}
	_, err := s.submitDone("exec-run --all")
	return err
}

// AbortInferior kills the running inferior.
func (s *Session) AbortInferior() error {
	_, err := s.submitDone("exec-abort")
	return err
}

// ResumeInferior continues execution. threadID, when non-nil, scopes the
// resume to that thread (non-stop mode); nil resumes the current thread
// group.
func (s *Session) ResumeInferior(threadID *int) error {
	c := newCmd("exec-continue").optIntPtr("--thread", threadID)
	_, err := s.submitDone(c.body())
	return err
}

// ResumeAllInferiors continues every stopped thread.
func (s *Session) ResumeAllInferiors() error {
	_, err := s.submitDone("exec-continue --all")
	return err
}

// InterruptInferior stops a running thread (or, with threadID nil, the
// current thread group).
func (s *Session) InterruptInferior(threadID *int) error {
	c := newCmd("exec-interrupt").optIntPtr("--thread", threadID)
	_, err := s.submitDone(c.body())
	return err
}

// InterruptAllInferiors stops every running inferior.
func (s *Session) InterruptAllInferiors() error {
	_, err := s.submitDone("exec-interrupt --all")
	return err
}

// StepIntoLine source-line single-steps, descending into called functions.
func (s *Session) StepIntoLine(threadID *int) error {
	return s.execStep("exec-step", threadID)
}

// StepOverLine source-line single-steps without descending into calls.
func (s *Session) StepOverLine(threadID *int) error {
	return s.execStep("exec-next", threadID)
}

// StepIntoInstruction single-steps one machine instruction, descending
// into calls.
func (s *Session) StepIntoInstruction(threadID *int) error {
	return s.execStep("exec-step-instruction", threadID)
}

// StepOverInstruction single-steps one machine instruction without
// descending into calls.
func (s *Session) StepOverInstruction(threadID *int) error {
	return s.execStep("exec-next-instruction", threadID)
}

// StepOut runs until the current function returns.
func (s *Session) StepOut(threadID *int) error {
	return s.execStep("exec-finish", threadID)
}

func (s *Session) execStep(name string, threadID *int) error {
	c := newCmd(name).optIntPtr("--thread", threadID)
	_, err := s.submitDone(c.body())
	return err
}

func quote(s string) string {
	return `"` + s + `"`
}
