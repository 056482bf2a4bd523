package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// ParseError is re-exported from the internal grammar parser so callers can
// errors.As against it without reaching into an internal package.
type ParseError = mi.ParseError

// CommandFailed reports that the debugger answered a command with
// "^error". It is not fatal to the session: the queue proceeds to the
// next command after delivering this to the failed command's caller.
type CommandFailed struct {
	Message string
	Code    string
	Command string
	Token   string
}

func (e *CommandFailed) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gdbmi: command %q failed: %s (code=%s)", e.Command, e.Message, e.Code)
	}
	return fmt.Sprintf("gdbmi: command %q failed: %s", e.Command, e.Message)
}

// MalformedResponse reports that a result record parsed fine but was
// missing a key the façade operation required (e.g. "value", "memory",
// "register-names", "asm_insns", "path_expr", a non-empty "threads").
type MalformedResponse struct {
	Message  string
	Response string
	Command  string
	Token    string
}

func (e *MalformedResponse) Error() string {
	return fmt.Sprintf("gdbmi: malformed response to %q: %s", e.Command, e.Message)
}

// InvalidArgument reports a caller-side precondition violation, such as
// supplying only one of low/high frame bounds where the operation
// requires both or neither.
type InvalidArgument struct {
	Message string
}

func (e *InvalidArgument) Error() string {
	return "gdbmi: invalid argument: " + e.Message
}

// errEndOfSession is returned to every pending command's sink when the
// transport closes or the session is torn down without a prior command
// result for it.
type errEndOfSession struct{}

func (errEndOfSession) Error() string { return "gdbmi: session ended" }
