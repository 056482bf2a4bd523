package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
)

// EvaluateOptions configures EvaluateExpression. All fields are optional.
type EvaluateOptions struct {
	ThreadID   *int
	FrameLevel *int
}

// EvaluateExpression evaluates expr in the currently selected (or
// opts-designated) frame and returns its formatted value.
func (s *Session) EvaluateExpression(expr string, opts EvaluateOptions) (string, error) {
	c := newCmd("data-evaluate-expression").
		optIntPtr("--thread", opts.ThreadID).
		optIntPtr("--frame", opts.FrameLevel).
		param(quote(expr))
	m, err := s.submitDone(c.body())
	if err != nil {
		return "", err
	}
	if v := m.StrPtr("value"); v != nil {
		return *v, nil
	}
	return "", &MalformedResponse{Message: "missing value field", Command: c.body()}
}

// ReadMemory reads count bytes starting at address (a literal address or
// an expression evaluating to one), returning every contiguous block the
// debugger reports (begin/end/offset/contents), not merely the flattened
// bytes.
func (s *Session) ReadMemory(address string, count int, byteOffset *int) ([]extract.MemoryBlock, error) {
	c := newCmd("data-read-memory-bytes").
		optIntPtr("-o", byteOffset).
		param(quote(address)).
		param(fmt.Sprintf("%d", count))
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["memory"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing memory field", Command: c.body()}
	}
	return extract.ExtractMemoryBlocks(v)
}

// GetRegisterNames returns the architecture's register names, indexed by
// register number. When nums is non-empty, only those register numbers are
// reported.
func (s *Session) GetRegisterNames(nums ...int) ([]string, error) {
	c := newCmd("data-list-register-names")
	for _, n := range nums {
		c.param(fmt.Sprintf("%d", n))
	}
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["register-names"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing register-names field", Command: c.body()}
	}
	return extract.ExtractRegisterNames(v)
}

// RegisterValuesOptions configures GetRegisterValues. All fields are optional.
type RegisterValuesOptions struct {
	Registers       []int
	SkipUnavailable bool
	ThreadID        *int
	FrameLevel      *int
}

// GetRegisterValues returns the current value of every register (or, with
// opts.Registers set, only those), keyed by register number.
func (s *Session) GetRegisterValues(format string, opts RegisterValuesOptions) (map[int]string, error) {
	c := newCmd("data-list-register-values").
		optIntPtr("--thread", opts.ThreadID).
		optIntPtr("--frame", opts.FrameLevel).
		optWhen(opts.SkipUnavailable, "--skip-unavailable").
		param(format)
	for _, n := range opts.Registers {
		c.param(fmt.Sprintf("%d", n))
	}
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["register-values"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing register-values field", Command: c.body()}
	}
	return extract.ExtractRegisterValues(v)
}
