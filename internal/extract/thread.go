package extract

import (
	"fmt"
	"strconv"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// ExtractThreadFrame extracts the abbreviated frame nested in thread-info.
func ExtractThreadFrame(t mi.Tuple) ThreadFrame {
	m := mi.ToMapping(t)
	return ThreadFrame{
		Level:    intPtr(m, "level"),
		Addr:     str(m, "addr", ""),
		Func:     strPtr(m, "func"),
		Args:     extractVariables(m, "args"),
		File:     strPtr(m, "file"),
		Fullname: strPtr(m, "fullname"),
		Line:     intPtr(m, "line"),
	}
}

// ExtractThread extracts a single thread tuple. LLDB-MI may omit "id" on
// thread-created/-exited notifications; that case is handled by the event
// factory, not here — thread-info always carries "id".
func ExtractThread(t mi.Tuple) (Thread, error) {
	m := mi.ToMapping(t)
	id, err := strconv.Atoi(str(m, "id", ""))
	if err != nil {
		return Thread{}, fmt.Errorf("extract: thread has no numeric id: %w", err)
	}
	var frame ThreadFrame
	if ft, ok := m.Tuple("frame"); ok {
		frame = ExtractThreadFrame(ft)
	}
	th := Thread{
		ID:            id,
		TargetID:      str(m, "target-id", ""),
		Name:          strPtr(m, "name"),
		Frame:         frame,
		ProcessorCore: strPtr(m, "core"),
		Details:       strPtr(m, "details"),
	}
	if state := m.StrPtr("state"); state != nil {
		th.IsStopped = boolPtr(*state == "stopped")
	}
	return th, nil
}

// ExtractThreads extracts thread-info's "threads" field plus the optional
// "current-thread-id" sibling.
func ExtractThreads(threads mi.Value, currentID mi.Value) (MultiThread, error) {
	list, ok := threads.(mi.List)
	if !ok {
		return MultiThread{}, fmt.Errorf("extract: threads is not a list (%T)", threads)
	}
	var out MultiThread
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		th, err := ExtractThread(t)
		if err != nil {
			return MultiThread{}, err
		}
		out.All = append(out.All, th)
	}
	if currentID != nil {
		if s, ok := currentID.(mi.StringValue); ok {
			for i := range out.All {
				if fmt.Sprint(out.All[i].ID) == string(s) {
					out.Current = &out.All[i]
					break
				}
			}
		}
	}
	return out, nil
}
