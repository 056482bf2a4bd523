package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
	"github.com/schreinerhq/gdbmi/internal/mi"
)

// AddWatchOptions configures AddWatch. All fields are optional.
type AddWatchOptions struct {
	ID           string // defaults to "-" (let the debugger auto-generate a name)
	ThreadID     *int
	ThreadGroup  *string
	FrameLevel   *int
	FrameAddress string // "*" (current frame, the default), "@" (floating), or a literal address
	IsFloating   bool
}

// AddWatch creates a variable object ("watch") for expression.
func (s *Session) AddWatch(expression string, opts AddWatchOptions) (extract.Watch, error) {
	id := opts.ID
	if id == "" {
		id = "-"
	}
	addr := opts.FrameAddress
	switch {
	case opts.IsFloating:
		addr = "@"
	case addr == "":
		addr = "*"
	}
	c := newCmd("var-create").
		optIntPtr("--thread", opts.ThreadID).
		optValPtr("--thread-group", opts.ThreadGroup).
		optIntPtr("--frame", opts.FrameLevel).
		param(id).
		param(addr).
		param(expression)
	m, err := s.submitDone(c.body())
	if err != nil {
		return extract.Watch{}, err
	}
	return extract.ExtractWatch(mi.Tuple(tuplize(m))), nil
}

// RemoveWatch deletes a variable object and (by default) its children.
func (s *Session) RemoveWatch(id string) error {
	_, err := s.submitDone("var-delete " + id)
	return err
}

// UpdateWatch re-evaluates id (or "*" for every root watch created so
// far) and reports what changed. detail, when non-nil, overrides the
// debugger's default print-values level for the refreshed values.
func (s *Session) UpdateWatch(id string, detail *PrintValues) ([]extract.WatchUpdate, error) {
	if id == "" {
		id = "*"
	}
	c := newCmd("var-update")
	if detail != nil {
		c.param(fmt.Sprintf("%d", int(*detail)))
	}
	c.param(id)
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["changelist"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing changelist field", Command: c.body()}
	}
	return extract.ExtractWatchUpdates(v)
}

// WatchChildrenOptions configures GetWatchChildren. All fields are optional.
type WatchChildrenOptions struct {
	Detail   *PrintValues // defaults to PrintAllValues
	From, To *int
}

// GetWatchChildren lists the children of a variable object, optionally
// restricted to the range [From, To).
func (s *Session) GetWatchChildren(id string, opts WatchChildrenOptions) ([]extract.WatchChild, error) {
	detail := PrintAllValues
	if opts.Detail != nil {
		detail = *opts.Detail
	}
	c := newCmd("var-list-children").opt(watchDetailFlag(detail)).param(id)
	if opts.From != nil && opts.To != nil {
		c.param(fmt.Sprintf("%d", *opts.From)).param(fmt.Sprintf("%d", *opts.To))
	}
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	return extract.ExtractWatchChildren(m), nil
}

func watchDetailFlag(detail PrintValues) string {
	switch detail {
	case PrintNoValues:
		return "--no-values"
	case PrintSimpleValues:
		return "--simple-values"
	default:
		return "--all-values"
	}
}

// SetWatchValueFormat changes the display format ("natural", "hexadecimal",
// "octal", "binary", "decimal") a watch reports its value in and returns
// the value in the new format, read from either the GDB ("value" field) or
// LLDB (changelist[0].value) response shape.
func (s *Session) SetWatchValueFormat(id, format string) (string, error) {
	m, err := s.submitDone(fmt.Sprintf("var-set-format %s %s", id, format))
	if err != nil {
		return "", err
	}
	return extract.ExtractWatchValue(m)
}

// GetWatchValue returns a watch's current formatted value, optionally in a
// one-off format (rather than the watch's configured one), handling both
// the GDB ("value" field) and LLDB (changelist[0].value) response shapes.
func (s *Session) GetWatchValue(id string, format string) (string, error) {
	c := newCmd("var-evaluate-expression")
	if format != "" {
		c.optVal("-f", format)
	}
	c.param(id)
	m, err := s.submitDone(c.body())
	if err != nil {
		return "", err
	}
	return extract.ExtractWatchValue(m)
}

// SetWatchValue assigns a new value to a watch's underlying expression.
func (s *Session) SetWatchValue(id, value string) error {
	_, err := s.submitDone(fmt.Sprintf("var-assign %s %s", id, quote(value)))
	return err
}

// GetWatchAttributes returns the editability/type attributes of a watch.
func (s *Session) GetWatchAttributes(id string) ([]string, error) {
	m, err := s.submitDone("var-show-attributes " + id)
	if err != nil {
		return nil, err
	}
	return extract.ExtractWatchAttributes(m), nil
}

// GetWatchExpression returns the path expression a watch was created from
// (the recreation path used to navigate into pointers/composites), via
// var-info-path-expression — distinct from the plain language expression
// var-info-expression would report.
func (s *Session) GetWatchExpression(id string) (string, error) {
	body := "var-info-path-expression " + id
	m, err := s.submitDone(body)
	if err != nil {
		return "", err
	}
	if expr := m.StrPtr("path_expr"); expr != nil {
		return *expr, nil
	}
	return "", &MalformedResponse{Message: "missing path_expr field", Command: body}
}

// tuplize turns a flattened Mapping back into name/value pairs for the
// extractors that expect a Tuple. Order is not meaningful here: var-create
// responses never contain duplicate keys.
func tuplize(m mi.Mapping) []mi.TuplePair {
	out := make([]mi.TuplePair, 0, len(m))
	for name, v := range m {
		out = append(out, mi.TuplePair{Name: name, Value: v})
	}
	return out
}
