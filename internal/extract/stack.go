package extract

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// StackFrame extracts a single stack frame from a "frame" tuple.
func ExtractStackFrame(t mi.Tuple) StackFrame {
	m := mi.ToMapping(t)
	return StackFrame{
		Level:    intVal(m, "level", 0),
		Func:     strPtr(m, "func"),
		Address:  str(m, "addr", ""),
		Filename: strPtr(m, "file"),
		Fullname: strPtr(m, "fullname"),
		Line:     intPtr(m, "line"),
		From:     strPtr(m, "from"),
	}
}

// ExtractFrameInfo extracts the frame carried by a stop event, which omits
// "level" but includes "args".
func ExtractFrameInfo(t mi.Tuple) FrameInfo {
	m := mi.ToMapping(t)
	return FrameInfo{
		Func:     strPtr(m, "func"),
		Address:  str(m, "addr", ""),
		Filename: strPtr(m, "file"),
		Fullname: strPtr(m, "fullname"),
		Line:     intPtr(m, "line"),
		From:     strPtr(m, "from"),
		Args:     extractVariables(m, "args"),
	}
}

// ExtractVariable extracts a single name/value/type variable tuple.
func ExtractVariable(t mi.Tuple) Variable {
	m := mi.ToMapping(t)
	return Variable{
		Name:  str(m, "name", ""),
		Value: strPtr(m, "value"),
		Type:  strPtr(m, "type"),
	}
}

// extractVariables normalizes the single-tuple-or-list shape of a
// "args"/"locals" style field into a []Variable, in order.
func extractVariables(m mi.Mapping, name string) []Variable {
	var out []Variable
	for _, t := range m.OrArray(name) {
		out = append(out, ExtractVariable(t))
	}
	return out
}

// ExtractStackFrames extracts every frame from a "stack" field (the result
// of stack-list-frames), always the list-of-frame tuples shape.
func ExtractStackFrames(v mi.Value) ([]StackFrame, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: stack is not a list (%T)", v)
	}
	out := make([]StackFrame, 0, len(list))
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		out = append(out, ExtractStackFrame(t))
	}
	return out, nil
}

// ExtractFrameArgs extracts stack-list-arguments' "stack-args" field. Each
// "frame" entry may itself be a single tuple or a list; "args" inside a
// frame may be a single variable or a list.
func ExtractFrameArgs(v mi.Value) ([]FrameArgs, error) {
	m := mi.Mapping{"stack-args": v}
	var out []FrameArgs
	for _, frameTuple := range m.OrArray("stack-args") {
		fm := mi.ToMapping(frameTuple)
		out = append(out, FrameArgs{
			Level: intVal(fm, "level", 0),
			Args:  extractVariables(fm, "args"),
		})
	}
	return out, nil
}

// ExtractFrameVariables splits stack-list-variables' "variables" field by
// arg="1" into args vs locals, preserving order within each bucket.
func ExtractFrameVariables(v mi.Value) (FrameVariables, error) {
	list, ok := v.(mi.List)
	if !ok {
		return FrameVariables{}, fmt.Errorf("extract: variables is not a list (%T)", v)
	}
	var out FrameVariables
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		vm := mi.ToMapping(t)
		v := Variable{
			Name:  str(vm, "name", ""),
			Value: strPtr(vm, "value"),
			Type:  strPtr(vm, "type"),
		}
		if str(vm, "arg", "0") == "1" {
			out.Args = append(out.Args, v)
		} else {
			out.Locals = append(out.Locals, v)
		}
	}
	return out, nil
}
