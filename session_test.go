package gdbmi

import (
	"strings"
	"testing"
)

func TestSession_CommandFailed_PropagatesMessageAndCode(t *testing.T) {
	q, fd := newTestQueue()
	s := &Session{q: q}

	errCh := make(chan error, 1)
	go func() {
		_, err := s.submitDone("target-select bogus")
		errCh <- err
	}()

	fd.nextCommand(t)
	fd.send(`1^error,msg="Command 'target-select'. Error connecting.",code="undefined-command"`)

	err := <-errCh
	cf, ok := err.(*CommandFailed)
	if !ok {
		t.Fatalf("expected *CommandFailed, got %T (%v)", err, err)
	}
	if cf.Message != "Command 'target-select'. Error connecting." {
		t.Errorf("Message = %q", cf.Message)
	}
	if cf.Code != "undefined-command" {
		t.Errorf("Code = %q", cf.Code)
	}
}

func TestSession_AddBreakpoint_ExtractsSingleLocation(t *testing.T) {
	q, fd := newTestQueue()
	s := &Session{q: q}

	type result struct {
		id  int
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		bp, err := s.AddBreakpoint("main", AddBreakpointOptions{Temporary: true})
		if err != nil {
			resCh <- result{err: err}
			return
		}
		resCh <- result{id: bp.ID}
	}()

	cmd := fd.nextCommand(t)
	if !containsAll(cmd, "-break-insert", "-t", "main") {
		t.Fatalf("unexpected command: %q", cmd)
	}
	fd.send(`1^done,bkpt={number="999",type="breakpoint",disp="del",enabled="y",addr="0x400927",func="main",file="x.cpp",fullname="/x.cpp",line="47",times="0"}`)

	res := <-resCh
	if res.err != nil {
		t.Fatalf("AddBreakpoint: %v", res.err)
	}
	if res.id != 999 {
		t.Errorf("ID = %d, want 999", res.id)
	}
}

func TestSession_CanEmitFunctionFinishedNotification(t *testing.T) {
	gdbSession := &Session{debugger: DebuggerGDB}
	if !gdbSession.CanEmitFunctionFinishedNotification() {
		t.Error("GDB session should report it can emit function-finished")
	}
	lldbSession := &Session{debugger: DebuggerLLDB}
	if lldbSession.CanEmitFunctionFinishedNotification() {
		t.Error("LLDB session should report it cannot emit function-finished")
	}
}

func TestSession_GetStackFrameArgs_RejectsOneSidedBounds(t *testing.T) {
	s := &Session{}
	low := 1
	_, err := s.GetStackFrameArgs(PrintAllValues, StackFrameArgsOptions{Low: &low})
	if _, ok := err.(*InvalidArgument); !ok {
		t.Fatalf("expected *InvalidArgument, got %T (%v)", err, err)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
