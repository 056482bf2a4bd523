// Package mi implements the GDB/LLDB Machine Interface output grammar: a
// line-oriented tokenizer and parser that turns one line of MI text into a
// typed Record, plus the generic Value tree (string/tuple/list) that the
// record's payload is built from.
package mi

// Value is the recursive MI value: a c-string, an ordered tuple of named
// values, or a list of (possibly named) values.
type Value interface {
	isValue()
}

// StringValue is a decoded c-string value.
type StringValue string

func (StringValue) isValue() {}

// TuplePair is one named member of a Tuple, in source order.
type TuplePair struct {
	Name  string
	Value Value
}

// Tuple is an ordered "{}"-delimited sequence of name=value results.
// Duplicate names are preserved verbatim here; folding them into a
// sequence only happens when the tuple is converted to a Mapping.
type Tuple []TuplePair

func (Tuple) isValue() {}

// Get returns the value of the first pair with the given name.
func (t Tuple) Get(name string) (Value, bool) {
	for _, p := range t {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// All returns every value recorded under name, in order.
func (t Tuple) All(name string) []Value {
	var out []Value
	for _, p := range t {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// ListItem is one member of a List. Name is empty for a bare value; it is
// set when the list is built from the "result" list-item production
// (name=value pairs with no enclosing tuple braces).
type ListItem struct {
	Name  string
	Value Value
}

// List is a "[]"-delimited sequence of values, or of name=value pairs.
type List []ListItem

func (List) isValue() {}

// Values returns the bare values of a List, discarding any item names.
func (l List) Values() []Value {
	out := make([]Value, len(l))
	for i, it := range l {
		out[i] = it.Value
	}
	return out
}
