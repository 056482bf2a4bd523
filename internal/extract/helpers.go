package extract

import (
	"strconv"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// str returns the string under name, or def if absent.
func str(m mi.Mapping, name, def string) string {
	return m.Str(name, def)
}

// strPtr returns a pointer to the string under name, or nil if absent.
func strPtr(m mi.Mapping, name string) *string {
	return m.StrPtr(name)
}

// intPtr parses the base-10 integer under name, or nil if absent or
// unparsable. Fields absent from the mapping stay undefined rather than
// defaulting to zero.
func intPtr(m mi.Mapping, name string) *int {
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

// intVal is intPtr with a default for required fields.
func intVal(m mi.Mapping, name string, def int) int {
	if p := intPtr(m, name); p != nil {
		return *p
	}
	return def
}

// boolYN maps the MI "y"/"n" convention to a bool pointer, nil if absent.
func boolYN(m mi.Mapping, name string) *bool {
	s := m.StrPtr(name)
	if s == nil {
		return nil
	}
	v := *s == "y"
	return &v
}

func boolPtr(v bool) *bool { return &v }
