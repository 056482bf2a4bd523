package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
)

// PrintValues selects how much detail stack-list-arguments/-variables
// includes, mirroring MI's 0/1/2 print-values convention.
type PrintValues int

const (
	PrintNoValues PrintValues = iota
	PrintAllValues
	PrintSimpleValues
)

// StackFrameOptions configures GetStackFrame. All fields are optional.
type StackFrameOptions struct {
	ThreadID   *int
	FrameLevel *int
}

// GetStackFrame returns the currently selected frame, or the frame
// identified by opts.
func (s *Session) GetStackFrame(opts StackFrameOptions) (extract.StackFrame, error) {
	c := newCmd("stack-info-frame").
		optIntPtr("--thread", opts.ThreadID).
		optIntPtr("--frame", opts.FrameLevel)
	m, err := s.submitDone(c.body())
	if err != nil {
		return extract.StackFrame{}, err
	}
	t, ok := m.Tuple("frame")
	if !ok {
		return extract.StackFrame{}, &MalformedResponse{Message: "missing frame field", Command: c.body()}
	}
	return extract.ExtractStackFrame(t), nil
}

// StackDepthOptions configures GetStackDepth. All fields are optional.
type StackDepthOptions struct {
	ThreadID *int
	MaxDepth *int
}

// GetStackDepth returns the number of frames on the current stack, or, when
// opts.MaxDepth is set, the number of frames up to that bound.
func (s *Session) GetStackDepth(opts StackDepthOptions) (int, error) {
	c := newCmd("stack-info-depth").optIntPtr("--thread", opts.ThreadID)
	if opts.MaxDepth != nil {
		c.param(fmt.Sprintf("%d", *opts.MaxDepth))
	}
	m, err := s.submitDone(c.body())
	if err != nil {
		return 0, err
	}
	depth := m.Str("depth", "")
	n, convErr := parseInt(depth)
	if convErr != nil {
		return 0, &MalformedResponse{Message: "unparsable depth " + depth, Command: c.body()}
	}
	return n, nil
}

// StackFramesOptions configures GetStackFrames. All fields are optional.
type StackFramesOptions struct {
	ThreadID       *int
	NoFrameFilters bool
	Low, High      *int
}

// GetStackFrames lists frames in [Low, High], or the whole stack when both
// bounds are nil.
func (s *Session) GetStackFrames(opts StackFramesOptions) ([]extract.StackFrame, error) {
	if err := validateBounds(opts.Low, opts.High); err != nil {
		return nil, err
	}
	c := newCmd("stack-list-frames").
		optIntPtr("--thread", opts.ThreadID).
		optWhen(opts.NoFrameFilters, "--no-frame-filters")
	appendFrameBounds(c, opts.Low, opts.High)
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["stack"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing stack field", Command: c.body()}
	}
	return extract.ExtractStackFrames(v)
}

// StackFrameArgsOptions configures GetStackFrameArgs. All fields are optional.
type StackFrameArgsOptions struct {
	ThreadID        *int
	NoFrameFilters  bool
	SkipUnavailable bool
	Low, High       *int
}

// GetStackFrameArgs lists the arguments of frames in [Low, High] (or every
// frame, when both are nil). Supplying exactly one of Low/High is an
// InvalidArgument: MI's stack-list-arguments requires both or neither.
func (s *Session) GetStackFrameArgs(values PrintValues, opts StackFrameArgsOptions) ([]extract.FrameArgs, error) {
	if err := validateBounds(opts.Low, opts.High); err != nil {
		return nil, err
	}
	c := newCmd("stack-list-arguments").
		optIntPtr("--thread", opts.ThreadID).
		optWhen(opts.NoFrameFilters, "--no-frame-filters").
		optWhen(opts.SkipUnavailable, "--skip-unavailable").
		param(fmt.Sprintf("%d", int(values)))
	appendFrameBounds(c, opts.Low, opts.High)
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["stack-args"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing stack-args field", Command: c.body()}
	}
	return extract.ExtractFrameArgs(v)
}

// StackFrameVariablesOptions configures GetStackFrameVariables. All fields
// are optional.
type StackFrameVariablesOptions struct {
	ThreadID        *int
	FrameLevel      *int
	NoFrameFilters  bool
	SkipUnavailable bool
}

// GetStackFrameVariables lists the arguments and locals visible in the
// selected (or opts-designated) frame.
func (s *Session) GetStackFrameVariables(values PrintValues, opts StackFrameVariablesOptions) (extract.FrameVariables, error) {
	c := newCmd("stack-list-variables").
		optIntPtr("--thread", opts.ThreadID).
		optIntPtr("--frame", opts.FrameLevel).
		optWhen(opts.NoFrameFilters, "--no-frame-filters").
		optWhen(opts.SkipUnavailable, "--skip-unavailable").
		param(fmt.Sprintf("%d", int(values)))
	m, err := s.submitDone(c.body())
	if err != nil {
		return extract.FrameVariables{}, err
	}
	v, ok := m["variables"]
	if !ok {
		return extract.FrameVariables{}, &MalformedResponse{Message: "missing variables field", Command: c.body()}
	}
	return extract.ExtractFrameVariables(v)
}

func validateBounds(low, high *int) error {
	if (low == nil) != (high == nil) {
		return &InvalidArgument{Message: "low and high frame bounds must both be set or both be nil"}
	}
	return nil
}

func appendFrameBounds(c *cmdBuilder, low, high *int) {
	if low != nil {
		c.param(fmt.Sprintf("%d", *low)).param(fmt.Sprintf("%d", *high))
	}
}

