package extract

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// ExtractAsmInstruction extracts a single disassembled instruction tuple.
func ExtractAsmInstruction(t mi.Tuple) AsmInstruction {
	m := mi.ToMapping(t)
	return AsmInstruction{
		Address: str(m, "address", ""),
		Func:    strPtr(m, "func-name"),
		Offset:  intPtr(m, "offset"),
		Inst:    str(m, "inst", ""),
		Opcodes: strPtr(m, "opcodes"),
		Size:    intPtr(m, "size"),
	}
}

// ExtractAsmInstructions extracts data-disassemble's "asm_insns" field in
// its flat shape: a list of instruction tuples.
func ExtractAsmInstructions(v mi.Value) ([]AsmInstruction, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: asm_insns is not a list (%T)", v)
	}
	out := make([]AsmInstruction, 0, len(list))
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		out = append(out, ExtractAsmInstruction(t))
	}
	return out, nil
}

// ExtractAsmByLine extracts data-disassemble's "asm_insns" field in its
// by-line shape: a list of src_and_asm_line tuples, each nesting a
// line_asm_insn list.
func ExtractAsmByLine(v mi.Value) ([]SourceLineAsm, error) {
	list, ok := v.(mi.List)
	if !ok {
		return nil, fmt.Errorf("extract: asm_insns is not a list (%T)", v)
	}
	out := make([]SourceLineAsm, 0, len(list))
	for _, item := range list {
		t, ok := item.Value.(mi.Tuple)
		if !ok {
			continue
		}
		m := mi.ToMapping(t)
		sl := SourceLineAsm{
			File:     strPtr(m, "file"),
			Fullname: strPtr(m, "fullname"),
			Line:     intVal(m, "line", 0),
		}
		if insns, ok := m["line_asm_insn"]; ok {
			ins, err := ExtractAsmInstructions(insns)
			if err != nil {
				return nil, err
			}
			sl.Insns = ins
		}
		out = append(out, sl)
	}
	return out, nil
}
