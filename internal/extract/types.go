// Package extract turns the generic mi.Tuple/mi.Mapping produced by the
// parser into the domain records the session façade returns: breakpoints,
// stack frames, watches, memory blocks, disassembly and threads.
//
// Every extractor here is a pure function: given a parsed mapping (or the
// mi.Value found under one of its keys) it returns a populated struct or
// an error. None of them touch the command queue or the debugger process.
package extract

// Location is one resolved (or pending) location of a Breakpoint.
type Location struct {
	ID        string // "N" or "N.M"
	IsEnabled *bool
	Address   *string
	Func      *string
	Filename  *string
	Fullname  *string
	Line      *int
	At        *string
}

// Breakpoint describes a single GDB/LLDB breakpoint, tracepoint or catchpoint.
type Breakpoint struct {
	ID               int
	Type             string
	CatchType        *string
	IsTemp           *bool
	IsEnabled        *bool
	Locations        []Location
	Pending          *string
	EvaluatedBy      *string
	ThreadID         *int
	Condition        *string
	IgnoreCount      *int
	EnableCount      *int
	Mask             *string
	PassCount        *int
	OriginalLocation *string
	HitCount         *int
	IsInstalled      *bool
	What             *string
}

// StackFrame describes one frame of a call stack.
type StackFrame struct {
	Level    int
	Func     *string
	Address  string
	Filename *string
	Fullname *string
	Line     *int
	From     *string
}

// FrameInfo is a StackFrame as reported inside a stop event: no Level, but
// the frame's arguments are included.
type FrameInfo struct {
	Func     *string
	Address  string
	Filename *string
	Fullname *string
	Line     *int
	From     *string
	Args     []Variable
}

// Variable is a name with an optional formatted value and/or type.
type Variable struct {
	Name  string
	Value *string
	Type  *string
}

// FrameArgs is the argument list of one stack frame, as returned by
// stack-list-arguments.
type FrameArgs struct {
	Level int
	Args  []Variable
}

// FrameVariables is the combined args/locals view from stack-list-variables.
type FrameVariables struct {
	Args   []Variable
	Locals []Variable
}

// Watch describes a GDB/LLDB variable object ("watch").
type Watch struct {
	ID              string
	ChildCount      int
	Value           *string
	ExpressionType  *string
	ThreadID        *int
	IsDynamic       bool
	DisplayHint     *string
	HasMoreChildren bool
}

// WatchChild extends Watch with the fields var-list-children additionally
// reports for each child.
type WatchChild struct {
	Watch
	Expression string
	IsFrozen   bool
}

// WatchUpdate is one entry of var-update's changelist.
type WatchUpdate struct {
	ID              string
	ChildCount      *int
	Value           *string
	ExpressionType  *string
	IsInScope       bool
	IsObsolete      bool
	HasTypeChanged  *bool
	IsDynamic       *bool
	DisplayHint     *string
	HasMoreChildren bool
	NewChildren     []WatchChild
}

// MemoryBlock is one contiguous block returned by data-read-memory-bytes.
type MemoryBlock struct {
	Begin    string
	End      string
	Offset   string
	Contents string
}

// AsmInstruction is one disassembled instruction.
type AsmInstruction struct {
	Address string
	Func    *string
	Offset  *int
	Inst    string
	Opcodes *string
	Size    *int
}

// SourceLineAsm groups AsmInstructions under the source line they came
// from, for the by-line disassembly shape.
type SourceLineAsm struct {
	File     *string
	Fullname *string
	Line     int
	Insns    []AsmInstruction
}

// ThreadFrame is the (abbreviated) frame reported inside thread-info.
type ThreadFrame struct {
	Level    *int
	Addr     string
	Func     *string
	Args     []Variable
	File     *string
	Fullname *string
	Line     *int
}

// Thread describes one inferior thread.
type Thread struct {
	ID            int
	TargetID      string
	Name          *string
	Frame         ThreadFrame
	IsStopped     *bool
	ProcessorCore *string
	Details       *string
}

// MultiThread is the result of thread-info with no thread id argument.
type MultiThread struct {
	All     []Thread
	Current *Thread
}

// StopReason enumerates the "reason" field of a *stopped async record.
type StopReason int

const (
	StopUnrecognized StopReason = iota
	StopBreakpointHit
	StopEndSteppingRange
	StopFunctionFinished
	StopExitedNormally
	StopExitedSignalled
	StopExited
	StopSignalReceived
	StopExceptionReceived
)

var stopReasonNames = map[string]StopReason{
	"breakpoint-hit":      StopBreakpointHit,
	"end-stepping-range":  StopEndSteppingRange,
	"function-finished":   StopFunctionFinished,
	"exited-normally":     StopExitedNormally,
	"exited-signalled":    StopExitedSignalled,
	"exited":              StopExited,
	"signal-received":     StopSignalReceived,
	"exception-received":  StopExceptionReceived,
}

// ParseStopReason maps a raw MI "reason" string to a StopReason,
// degrading unknown values to StopUnrecognized rather than failing.
func ParseStopReason(s string) StopReason {
	if r, ok := stopReasonNames[s]; ok {
		return r
	}
	return StopUnrecognized
}

func (r StopReason) String() string {
	for k, v := range stopReasonNames {
		if v == r {
			return k
		}
	}
	return "unrecognized"
}
