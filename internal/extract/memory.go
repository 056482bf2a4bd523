package extract

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// ExtractMemoryBlocks extracts data-read-memory-bytes' "memory" field, a
// list of contiguous blocks.
func ExtractMemoryBlocks(v mi.Value) ([]MemoryBlock, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: memory is not a list (%T)", v)
	}
	out := make([]MemoryBlock, 0, len(list))
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		m := mi.ToMapping(t)
		out = append(out, MemoryBlock{
			Begin:    str(m, "begin", ""),
			End:      str(m, "end", ""),
			Offset:   str(m, "offset", ""),
			Contents: str(m, "contents", ""),
		})
	}
	return out, nil
}

// ExtractRegisterValues extracts data-list-register-values' "register-values"
// field into a mapping from register number to formatted value.
func ExtractRegisterValues(v mi.Value) (map[int]string, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: register-values is not a list (%T)", v)
	}
	out := make(map[int]string, len(list))
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		m := mi.ToMapping(t)
		num := intVal(m, "number", -1)
		if num < 0 {
			continue
		}
		out[num] = str(m, "value", "")
	}
	return out, nil
}

// ExtractRegisterNames extracts data-list-register-names' "register-names"
// field, a plain list of strings (some entries may be empty for unnamed
// register slots).
func ExtractRegisterNames(v mi.Value) ([]string, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: register-names is not a list (%T)", v)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.Value.(mi.StringValue); ok {
			out = append(out, string(s))
		}
	}
	return out, nil
}
