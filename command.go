package gdbmi

import (
	"fmt"
	"strings"
)

// cmdBuilder assembles one MI command line body (everything after the
// optional "token-") via a small fluent builder. Most façade operations use
// it; a few fixed-shape commands are formatted directly with fmt.Sprintf.
type cmdBuilder struct {
	name    string
	params  []string
	options []string
}

func newCmd(name string) *cmdBuilder {
	return &cmdBuilder{name: name}
}

func (c *cmdBuilder) param(p string) *cmdBuilder {
	c.params = append(c.params, p)
	return c
}

func (c *cmdBuilder) paramWhen(cond bool, p string) *cmdBuilder {
	if cond {
		c.params = append(c.params, p)
	}
	return c
}

func (c *cmdBuilder) opt(flag string) *cmdBuilder {
	c.options = append(c.options, flag)
	return c
}

func (c *cmdBuilder) optWhen(cond bool, flag string) *cmdBuilder {
	if cond {
		c.options = append(c.options, flag)
	}
	return c
}

func (c *cmdBuilder) optVal(flag, val string) *cmdBuilder {
	c.options = append(c.options, flag, val)
	return c
}

func (c *cmdBuilder) optValPtr(flag string, val *string) *cmdBuilder {
	if val != nil {
		c.optVal(flag, *val)
	}
	return c
}

func (c *cmdBuilder) optIntPtr(flag string, val *int) *cmdBuilder {
	if val != nil {
		c.optVal(flag, fmt.Sprintf("%d", *val))
	}
	return c
}

// body renders "name [options...] [params...]" without a leading token.
func (c *cmdBuilder) body() string {
	parts := make([]string, 0, 1+len(c.options)+len(c.params))
	parts = append(parts, c.name)
	parts = append(parts, c.options...)
	parts = append(parts, c.params...)
	return strings.Join(parts, " ")
}
