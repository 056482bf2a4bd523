package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
)

// AddBreakpointOptions configures AddBreakpoint. All fields are optional.
type AddBreakpointOptions struct {
	Temporary   bool
	Hardware    bool
	Pending     bool
	Disabled    bool
	Tracepoint  bool
	Condition   *string
	IgnoreCount *int
	ThreadID    *int
}

// AddBreakpoint inserts a breakpoint at location (a linespec, address, or
// "*ADDRESS").
func (s *Session) AddBreakpoint(location string, opts AddBreakpointOptions) (extract.Breakpoint, error) {
	c := newCmd("break-insert").
		optWhen(opts.Temporary, "-t").
		optWhen(opts.Hardware, "-h").
		optWhen(opts.Pending, "-f").
		optWhen(opts.Disabled, "-d").
		optWhen(opts.Tracepoint, "-a").
		optValPtr("-c", opts.Condition).
		optIntPtr("-i", opts.IgnoreCount).
		optIntPtr("-p", opts.ThreadID).
		param(location)

	return s.submitBreakpoint(c.body())
}

func (s *Session) submitBreakpoint(body string) (extract.Breakpoint, error) {
	m, err := s.submitDone(body)
	if err != nil {
		return extract.Breakpoint{}, err
	}
	bkpt, ok := m["bkpt"]
	if !ok {
		return extract.Breakpoint{}, &MalformedResponse{Message: "missing bkpt field", Command: body}
	}
	return extract.ExtractBreakpoint(bkpt)
}

// RemoveBreakpoints deletes one or more breakpoints by number.
func (s *Session) RemoveBreakpoints(ids ...int) error {
	c := newCmd("break-delete")
	for _, id := range ids {
		c.param(fmt.Sprintf("%d", id))
	}
	_, err := s.submitDone(c.body())
	return err
}

// EnableBreakpoints enables one or more breakpoints.
func (s *Session) EnableBreakpoints(ids ...int) error {
	return s.toggleBreakpoints("break-enable", ids)
}

// DisableBreakpoints disables one or more breakpoints.
func (s *Session) DisableBreakpoints(ids ...int) error {
	return s.toggleBreakpoints("break-disable", ids)
}

func (s *Session) toggleBreakpoints(name string, ids []int) error {
	c := newCmd(name)
	for _, id := range ids {
		c.param(fmt.Sprintf("%d", id))
	}
	_, err := s.submitDone(c.body())
	return err
}

// IgnoreBreakpoint sets the ignore count of a breakpoint. Like break-insert,
// break-after's ^done carries the full updated bkpt tuple.
func (s *Session) IgnoreBreakpoint(id, count int) (extract.Breakpoint, error) {
	return s.submitBreakpoint(fmt.Sprintf("break-after %d %d", id, count))
}

// SetBreakpointCondition changes (or clears, with an empty condition) a
// breakpoint's condition expression.
func (s *Session) SetBreakpointCondition(id int, condition string) error {
	body := fmt.Sprintf("break-condition %d", id)
	if condition != "" {
		body += " " + condition
	}
	_, err := s.submitDone(body)
	return err
}
