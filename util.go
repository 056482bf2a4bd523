package gdbmi

import "strconv"

// parseInt is the one place façade methods convert a decimal MI field to
// an int, so every "malformed numeric field" error is reported uniformly.
func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
