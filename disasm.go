package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
)

// DisassembleAddressRange disassembles [start, end) as a flat instruction
// list. showOpcodes selects mode 2 (raw opcodes included) over mode 0.
func (s *Session) DisassembleAddressRange(start, end string, showOpcodes bool) ([]extract.AsmInstruction, error) {
	mode := 0
	if showOpcodes {
		mode = 2
	}
	body := fmt.Sprintf("data-disassemble -s %s -e %s -- %d", start, end, mode)
	m, err := s.submitDone(body)
	if err != nil {
		return nil, err
	}
	v, ok := m["asm_insns"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing asm_insns field", Command: body}
	}
	return extract.ExtractAsmInstructions(v)
}

// DisassembleAddressRangeByLine disassembles [start, end), grouped by
// source line. showOpcodes selects mode 3 (raw opcodes included) over
// mode 1.
func (s *Session) DisassembleAddressRangeByLine(start, end string, showOpcodes bool) ([]extract.SourceLineAsm, error) {
	mode := 1
	if showOpcodes {
		mode = 3
	}
	body := fmt.Sprintf("data-disassemble -s %s -e %s -- %d", start, end, mode)
	m, err := s.submitDone(body)
	if err != nil {
		return nil, err
	}
	v, ok := m["asm_insns"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing asm_insns field", Command: body}
	}
	return extract.ExtractAsmByLine(v)
}

// DisassembleOptions configures DisassembleFile/DisassembleFileByLine. All
// fields are optional.
type DisassembleOptions struct {
	MaxInstructions *int
	ShowOpcodes     bool
}

// DisassembleFile disassembles file starting at line as a flat instruction
// list.
func (s *Session) DisassembleFile(file string, line int, opts DisassembleOptions) ([]extract.AsmInstruction, error) {
	mode := 0
	if opts.ShowOpcodes {
		mode = 2
	}
	c := newCmd("data-disassemble").
		optVal("-f", quote(file)).
		optVal("-l", fmt.Sprintf("%d", line)).
		optIntPtr("-n", opts.MaxInstructions).
		opt("--").
		param(fmt.Sprintf("%d", mode))
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["asm_insns"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing asm_insns field", Command: c.body()}
	}
	return extract.ExtractAsmInstructions(v)
}

// DisassembleFileByLine disassembles file starting at line, grouped by
// source line.
func (s *Session) DisassembleFileByLine(file string, line int, opts DisassembleOptions) ([]extract.SourceLineAsm, error) {
	mode := 1
	if opts.ShowOpcodes {
		mode = 3
	}
	c := newCmd("data-disassemble").
		optVal("-f", quote(file)).
		optVal("-l", fmt.Sprintf("%d", line)).
		optIntPtr("-n", opts.MaxInstructions).
		opt("--").
		param(fmt.Sprintf("%d", mode))
	m, err := s.submitDone(c.body())
	if err != nil {
		return nil, err
	}
	v, ok := m["asm_insns"]
	if !ok {
		return nil, &MalformedResponse{Message: "missing asm_insns field", Command: c.body()}
	}
	return extract.ExtractAsmByLine(v)
}
