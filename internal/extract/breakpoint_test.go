package extract

import (
	"testing"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

func TestExtractBreakpoint_SingleTupleWithLocation(t *testing.T) {
	line := `=breakpoint-modified,bkpt={number="999",type="breakpoint",disp="keep",enabled="y",addr="0x400927",func="main",file="x.cpp",fullname="/x.cpp",line="47",times="1",enable="3",ignore="2",pass="4",original-location="main",thread="10",cond="x==1",what="nothing",at="0x400927 main",evaluated-by="target",mask="xxxx",installed="y"}`
	rec, err := mi.ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	m := mi.ToMapping(rec.Data)
	bkpt, ok := m["bkpt"]
	if !ok {
		t.Fatalf("expected bkpt key")
	}
	bp, err := ExtractBreakpoint(bkpt)
	if err != nil {
		t.Fatalf("unexpected extract error: %v", err)
	}
	if bp.ID != 999 {
		t.Errorf("ID = %d, want 999", bp.ID)
	}
	if bp.IsTemp == nil || *bp.IsTemp != false {
		t.Errorf("IsTemp = %v, want false", bp.IsTemp)
	}
	if bp.IsEnabled == nil || !*bp.IsEnabled {
		t.Errorf("IsEnabled = %v, want true", bp.IsEnabled)
	}
	if bp.HitCount == nil || *bp.HitCount != 1 {
		t.Errorf("HitCount = %v, want 1", bp.HitCount)
	}
	if bp.EnableCount == nil || *bp.EnableCount != 3 {
		t.Errorf("EnableCount = %v, want 3", bp.EnableCount)
	}
	if bp.IgnoreCount == nil || *bp.IgnoreCount != 2 {
		t.Errorf("IgnoreCount = %v, want 2", bp.IgnoreCount)
	}
	if bp.PassCount == nil || *bp.PassCount != 4 {
		t.Errorf("PassCount = %v, want 4", bp.PassCount)
	}
	if bp.Condition == nil || *bp.Condition != "x==1" {
		t.Errorf("Condition = %v, want x==1", bp.Condition)
	}
	if bp.ThreadID == nil || *bp.ThreadID != 10 {
		t.Errorf("ThreadID = %v, want 10", bp.ThreadID)
	}
	if bp.IsInstalled == nil || !*bp.IsInstalled {
		t.Errorf("IsInstalled = %v, want true", bp.IsInstalled)
	}
	if len(bp.Locations) != 1 {
		t.Fatalf("expected exactly one location, got %d", len(bp.Locations))
	}
	loc := bp.Locations[0]
	if loc.ID != "999.1" {
		t.Errorf("location id = %q, want 999.1", loc.ID)
	}
	if loc.Address == nil || *loc.Address != "0x400927" {
		t.Errorf("location address = %v", loc.Address)
	}
	if loc.Func == nil || *loc.Func != "main" {
		t.Errorf("location func = %v", loc.Func)
	}
	if loc.Line == nil || *loc.Line != 47 {
		t.Errorf("location line = %v", loc.Line)
	}
}

func TestExtractBreakpoint_PendingHasNoLocations(t *testing.T) {
	rec, err := mi.ParseLine(`^done,bkpt={number="2",type="breakpoint",disp="keep",enabled="y",addr="<PENDING>",pending="foo.c:10"}`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	m := mi.ToMapping(rec.Data)
	bp, err := ExtractBreakpoint(m["bkpt"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bp.Locations) != 0 {
		t.Errorf("expected zero locations for pending breakpoint, got %d", len(bp.Locations))
	}
	if bp.Pending == nil || *bp.Pending != "foo.c:10" {
		t.Errorf("Pending = %v", bp.Pending)
	}
}

func TestExtractBreakpoint_MultiLocation(t *testing.T) {
	rec, err := mi.ParseLine(`^done,bkpt=[{number="1",type="breakpoint",disp="keep",enabled="y"},{number="1.1",enabled="y",addr="0x1",func="a",file="f.c",line="1"},{number="1.2",enabled="n",addr="0x2",func="b",file="f.c",line="2"}]`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	m := mi.ToMapping(rec.Data)
	bp, err := ExtractBreakpoint(m["bkpt"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.ID != 1 {
		t.Fatalf("ID = %d, want 1", bp.ID)
	}
	if len(bp.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(bp.Locations))
	}
	if bp.Locations[0].ID != "1.1" || bp.Locations[1].ID != "1.2" {
		t.Errorf("unexpected location ids: %+v", bp.Locations)
	}
}
