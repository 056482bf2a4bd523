package extract

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// boolNum maps GDB's "0"/"1" numeric-string boolean convention.
func boolNum(m mi.Mapping, name string) bool {
	return str(m, name, "0") == "1"
}

// ExtractWatch extracts a Watch from a var-create/var-update style tuple.
func ExtractWatch(t mi.Tuple) Watch {
	m := mi.ToMapping(t)
	return Watch{
		ID:              str(m, "name", ""),
		ChildCount:      intVal(m, "numchild", 0),
		Value:           strPtr(m, "value"),
		ExpressionType:  strPtr(m, "type"),
		ThreadID:        intPtr(m, "thread-id"),
		IsDynamic:       boolNum(m, "dynamic"),
		DisplayHint:     strPtr(m, "displayhint"),
		HasMoreChildren: boolNum(m, "has_more"),
	}
}

// ExtractWatchChildren normalizes var-list-children's "children" field,
// which may be missing, empty, a single child tuple, or a list of
// children, always returning a slice.
func ExtractWatchChildren(m mi.Mapping) []WatchChild {
	var out []WatchChild
	for _, t := range m.OrArray("children") {
		out = append(out, extractWatchChild(t))
	}
	return out
}

func extractWatchChild(t mi.Tuple) WatchChild {
	m := mi.ToMapping(t)
	return WatchChild{
		Watch:      ExtractWatch(t),
		Expression: str(m, "exp", ""),
		IsFrozen:   boolNum(m, "frozen"),
	}
}

// ExtractWatchUpdate extracts one entry of var-update's "changelist".
func ExtractWatchUpdate(t mi.Tuple) WatchUpdate {
	m := mi.ToMapping(t)
	u := WatchUpdate{
		ID:              str(m, "name", ""),
		ChildCount:      intPtr(m, "new_num_children"),
		Value:           strPtr(m, "value"),
		ExpressionType:  strPtr(m, "new_type"),
		DisplayHint:     strPtr(m, "displayhint"),
		HasMoreChildren: boolNum(m, "has_more"),
	}
	switch str(m, "in_scope", "true") {
	case "false":
		u.IsInScope = false
	case "invalid":
		u.IsInScope = false
		u.IsObsolete = true
	default:
		u.IsInScope = true
	}
	if m.Has("type_changed") {
		u.HasTypeChanged = boolPtr(str(m, "type_changed", "false") == "true")
	}
	if m.Has("dynamic") {
		u.IsDynamic = boolPtr(boolNum(m, "dynamic"))
	}
	for _, ct := range m.OrArray("new_children") {
		u.NewChildren = append(u.NewChildren, extractWatchChild(ct))
	}
	return u
}

// ExtractWatchUpdates extracts var-update's "changelist" field.
func ExtractWatchUpdates(v mi.Value) ([]WatchUpdate, error) {
	m := mi.Mapping{"changelist": v}
	var out []WatchUpdate
	for _, t := range m.OrArray("changelist") {
		out = append(out, ExtractWatchUpdate(t))
	}
	return out, nil
}

// ExtractWatchAttributes parses var-show-attributes' result, returned as
// either a single "status"/"attr" string or a list of them.
func ExtractWatchAttributes(m mi.Mapping) []string {
	if attrs := m.StringArray("attr"); attrs != nil {
		return attrs
	}
	return m.StringArray("status")
}

// ExtractWatchValue resolves var-set-format's dual result shape: the value
// lives under either "value" (GDB) or "changelist[0].value" (LLDB).
func ExtractWatchValue(m mi.Mapping) (string, error) {
	if v := m.StrPtr("value"); v != nil {
		return *v, nil
	}
	list, ok := m.List("changelist")
	if ok && len(list) > 0 {
		if t, ok := list[0].Value.(mi.Tuple); ok {
			cm := mi.ToMapping(t)
			if v := cm.StrPtr("value"); v != nil {
				return *v, nil
			}
		}
	}
	return "", fmt.Errorf("extract: no value under 'value' or 'changelist[0].value'")
}
