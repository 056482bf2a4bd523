package event

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/schreinerhq/gdbmi/internal/extract"
	"github.com/schreinerhq/gdbmi/internal/mi"
)

// FromExec maps a "*class" exec notification to its events. A "stopped"
// record always yields the generic TargetStopped event first, followed by
// exactly one specialized event when the reason is breakpoint-hit,
// end-stepping-range, function-finished, signal-received or
// exception-received; exit reasons and unrecognized reasons yield only the
// generic event. Unknown classes yield no events.
func FromExec(class string, data mi.Tuple, log *zap.Logger) []Event {
	m := mi.ToMapping(data)
	switch class {
	case "running":
		return []Event{{Kind: KindTargetRunning, Payload: TargetRunning{
			ThreadID: m.Str("thread-id", ""),
		}}}
	case "stopped":
		return fromStopped(m, log)
	default:
		log.Warn("unknown exec-async class", zap.String("class", class))
		return nil
	}
}

func fromStopped(m mi.Mapping, log *zap.Logger) []Event {
	reason := extract.ParseStopReason(m.Str("reason", ""))
	stopped := TargetStopped{
		Reason:         reason,
		ThreadID:       intOr(m, "thread-id", 0),
		StoppedThreads: parseStoppedThreads(m.Str("stopped-threads", "")),
		ProcessorCore:  m.StrPtr("core"),
	}
	events := []Event{{Kind: KindTargetStopped, Payload: stopped}}

	var frame extract.FrameInfo
	if ft, ok := m.Tuple("frame"); ok {
		frame = extract.ExtractFrameInfo(ft)
	}

	switch reason {
	case extract.StopBreakpointHit:
		events = append(events, Event{Kind: KindBreakpointHit, Payload: BreakpointHit{
			TargetStopped: stopped,
			BreakpointID:  intOr(m, "bkptno", 0),
			Frame:         frame,
		}})
	case extract.StopEndSteppingRange:
		events = append(events, Event{Kind: KindStepFinished, Payload: StepFinished{
			TargetStopped: stopped,
			Frame:         frame,
		}})
	case extract.StopFunctionFinished:
		events = append(events, Event{Kind: KindFunctionFinished, Payload: FunctionFinished{
			TargetStopped: stopped,
			Frame:         frame,
			ResultVar:     m.StrPtr("gdb-result-var"),
			ReturnValue:   m.StrPtr("return-value"),
		}})
	case extract.StopSignalReceived:
		events = append(events, Event{Kind: KindSignalReceived, Payload: SignalReceived{
			TargetStopped: stopped,
			SignalCode:    m.StrPtr("signal-name"),
			SignalName:    m.StrPtr("signal-name"),
			SignalMeaning: m.StrPtr("signal-meaning"),
		}})
	case extract.StopExceptionReceived:
		events = append(events, Event{Kind: KindExceptionReceived, Payload: ExceptionReceived{
			TargetStopped: stopped,
			Exception:     m.Str("exception", ""),
		}})
	case extract.StopExitedNormally, extract.StopExitedSignalled, extract.StopExited:
		// The generic TargetStopped event already carries the reason;
		// process exit has no specialized event of its own.
	default:
		log.Warn("unrecognized stop reason", zap.String("reason", m.Str("reason", "")))
	}
	return events
}

func parseStoppedThreads(s string) []int {
	if s == "" || s == "all" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return []int{n}
}

func intOr(m mi.Mapping, name string, def int) int {
	s := m.StrPtr(name)
	if s == nil {
		return def
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return def
	}
	return n
}

// FromNotify maps a "=class" notification to its events. Unknown classes
// are logged and discarded, never fatal.
func FromNotify(class string, data mi.Tuple, log *zap.Logger) []Event {
	m := mi.ToMapping(data)
	switch class {
	case "thread-group-added":
		return []Event{{Kind: KindThreadGroupAdded, Payload: ThreadGroupPassthrough{ID: m.Str("id", ""), Raw: m}}}
	case "thread-group-removed":
		return []Event{{Kind: KindThreadGroupRemoved, Payload: ThreadGroupPassthrough{ID: m.Str("id", ""), Raw: m}}}
	case "thread-group-started":
		return []Event{{Kind: KindThreadGroupStarted, Payload: ThreadGroupPassthrough{ID: m.Str("id", ""), Raw: m}}}
	case "thread-group-exited":
		return []Event{{Kind: KindThreadGroupExited, Payload: ThreadGroupExited{
			ID:       m.Str("id", ""),
			ExitCode: intOr(m, "exit-code", 0),
		}}}
	case "thread-created":
		return []Event{{Kind: KindThreadCreated, Payload: ThreadLifecycle{
			ID:      optionalInt(m, "id"),
			GroupID: m.Str("group-id", ""),
		}}}
	case "thread-exited":
		return []Event{{Kind: KindThreadExited, Payload: ThreadLifecycle{
			ID:      optionalInt(m, "id"),
			GroupID: m.Str("group-id", ""),
		}}}
	case "thread-selected":
		return []Event{{Kind: KindThreadSelected, Payload: ThreadSelected{ID: intOr(m, "id", 0)}}}
	case "library-loaded":
		return []Event{{Kind: KindLibraryLoaded, Payload: extractLibraryEvent(m)}}
	case "library-unloaded":
		return []Event{{Kind: KindLibraryUnloaded, Payload: extractLibraryEvent(m)}}
	case "breakpoint-modified":
		bkpt, ok := m["bkpt"]
		if !ok {
			log.Warn("breakpoint-modified without bkpt field")
			return nil
		}
		bp, err := extract.ExtractBreakpoint(bkpt)
		if err != nil {
			log.Warn("could not extract modified breakpoint", zap.Error(err))
			return nil
		}
		return []Event{{Kind: KindBreakpointModified, Payload: BreakpointModified{Breakpoint: bp}}}
	default:
		if strings.HasPrefix(class, "breakpoint-") || strings.HasPrefix(class, "record-") ||
			strings.HasPrefix(class, "tsv-") || strings.HasPrefix(class, "cmd-param-") ||
			class == "memory-changed" || class == "traceframe-changed" {
			// Recognized-but-unmodeled GDB/LLDB notification classes;
			// degrade gracefully rather than failing the session.
			log.Debug("unmodeled async-notify class", zap.String("class", class))
			return nil
		}
		log.Warn("unknown async-notify class", zap.String("class", class))
		return nil
	}
}

func optionalInt(m mi.Mapping, name string) *int {
	s := m.StrPtr(name)
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &n
}

func extractLibraryEvent(m mi.Mapping) LibraryEvent {
	return LibraryEvent{
		ID:          m.Str("id", ""),
		TargetName:  m.Str("target-name", ""),
		HostName:    m.Str("host-name", ""),
		ThreadGroup: m.Str("thread-group", ""),
		LoadAddress: m.StrPtr("loaded_addr"),
		SymbolsPath: m.StrPtr("symbols-loaded"),
	}
}
