package extract

import (
	"testing"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

func TestExtractFrameInfo_FromStoppedRecord(t *testing.T) {
	line := `*stopped,reason="breakpoint-hit",disp="keep",bkptno="1",frame={addr="0x0000000000400d10",func="main.sub",args=[{name="s2",value="..."},{name="s1",value="..."},{name="anon2",value="..."}],file="main.go",fullname="/home/usc/main.go",line="14"},thread-id="1",stopped-threads="all",core="0"`
	rec, err := mi.ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	m := mi.ToMapping(rec.Data)
	frameTuple, ok := m.Tuple("frame")
	if !ok {
		t.Fatalf("expected frame tuple")
	}
	fi := ExtractFrameInfo(frameTuple)
	if fi.Func == nil || *fi.Func != "main.sub" {
		t.Errorf("Func = %v", fi.Func)
	}
	if len(fi.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(fi.Args))
	}
	if fi.Args[0].Name != "s2" || fi.Args[1].Name != "s1" {
		t.Errorf("unexpected arg order: %+v", fi.Args)
	}
}

func TestExtractFrameVariables_SplitsArgsAndLocals(t *testing.T) {
	// stack-list-variables' "variables" field.
	v := mi.List{
		{Value: mi.Tuple{{Name: "name", Value: mi.StringValue("argv")}, {Name: "arg", Value: mi.StringValue("1")}, {Name: "value", Value: mi.StringValue("[]")}}},
		{Value: mi.Tuple{{Name: "name", Value: mi.StringValue("i")}, {Name: "arg", Value: mi.StringValue("0")}, {Name: "value", Value: mi.StringValue("3")}}},
	}
	fv, err := ExtractFrameVariables(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fv.Args) != 1 || fv.Args[0].Name != "argv" {
		t.Errorf("unexpected args: %+v", fv.Args)
	}
	if len(fv.Locals) != 1 || fv.Locals[0].Name != "i" {
		t.Errorf("unexpected locals: %+v", fv.Locals)
	}
}
