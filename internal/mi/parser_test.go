package mi

import "testing"

func TestParseLine_Done(t *testing.T) {
	rec, err := ParseLine("^done")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != RecordResult || rec.ResultClass != ResultDone {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Data) != 0 {
		t.Fatalf("expected empty data, got %+v", rec.Data)
	}
}

func TestParseLine_Error(t *testing.T) {
	line := `^error,msg="Command 'target-select'. Error connecting.",code="undefined-command"`
	rec, err := ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ResultClass != ResultError {
		t.Fatalf("expected error result, got %v", rec.ResultClass)
	}
	m := ToMapping(rec.Data)
	if got := m.Str("msg", ""); got != "Command 'target-select'. Error connecting." {
		t.Errorf("msg = %q", got)
	}
	if got := m.Str("code", ""); got != "undefined-command" {
		t.Errorf("code = %q", got)
	}
}

func TestParseLine_ThreadGroupStarted(t *testing.T) {
	rec, err := ParseLine(`=thread-group-started,id="i1",pid="6550"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != RecordAsyncNotify || rec.Class != "thread-group-started" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	m := ToMapping(rec.Data)
	if m.Str("id", "") != "i1" || m.Str("pid", "") != "6550" {
		t.Errorf("unexpected data: %+v", m)
	}
}

func TestParseLine_StoppedBreakpointHit(t *testing.T) {
	line := `*stopped,reason="breakpoint-hit",bkptno="15",frame={},thread-id="1",stopped-threads="all"`
	rec, err := ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != RecordAsyncExec || rec.Class != "stopped" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	m := ToMapping(rec.Data)
	if m.Str("reason", "") != "breakpoint-hit" {
		t.Errorf("reason = %q", m.Str("reason", ""))
	}
	frame, ok := m.Tuple("frame")
	if !ok || len(frame) != 0 {
		t.Errorf("expected empty frame tuple, got %+v (ok=%v)", frame, ok)
	}
}

func TestParseLine_TargetStream(t *testing.T) {
	rec, err := ParseLine(`@"hello"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != RecordStreamTarget || rec.Stream != "hello" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseLine_Prompt(t *testing.T) {
	rec, err := ParseLine("(gdb)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != RecordPrompt {
		t.Fatalf("expected prompt, got %+v", rec)
	}
}

func TestParseLine_TokenPrefix(t *testing.T) {
	rec, err := ParseLine(`42^done`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Token != "42" {
		t.Errorf("token = %q", rec.Token)
	}
}

func TestParseLine_DuplicateKeysPreserveOrder(t *testing.T) {
	rec, err := ParseLine(`^done,x="1",x="2",x="3"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := rec.Data.All("x")
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d: %+v", len(got), got)
	}
	for i, want := range []string{"1", "2", "3"} {
		if s, ok := got[i].(StringValue); !ok || string(s) != want {
			t.Errorf("index %d: got %+v, want %q", i, got[i], want)
		}
	}
}

func TestToMapping_DuplicateKeysBecomeList(t *testing.T) {
	m := ToMapping(Tuple{
		{Name: "x", Value: StringValue("1")},
		{Name: "x", Value: StringValue("2")},
	})
	l, ok := m.List("x")
	if !ok || len(l) != 2 {
		t.Fatalf("expected folded list of 2, got %+v (ok=%v)", l, ok)
	}
}

func TestParseCString_Escapes(t *testing.T) {
	p := newParser(`"a\nb\tc\\d\"e\x41"`)
	s, err := p.parseCString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\tc\\d\"eA"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestParseLine_NestedTupleAndList(t *testing.T) {
	line := `^done,bkpt={number="1",thread-groups=["i1","i2"]}`
	rec, err := ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := ToMapping(rec.Data)
	bkpt, ok := m.Tuple("bkpt")
	if !ok {
		t.Fatalf("expected bkpt tuple")
	}
	bm := ToMapping(bkpt)
	tg, ok := bm.List("thread-groups")
	if !ok || len(tg) != 2 {
		t.Fatalf("expected 2 thread-groups, got %+v (ok=%v)", tg, ok)
	}
}

func TestParseLine_UnparsableLineIsFatalError(t *testing.T) {
	_, err := ParseLine(`not-a-valid-mi-line`)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var pe *ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func asParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*target = pe
	}
	return ok
}
