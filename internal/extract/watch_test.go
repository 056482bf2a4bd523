package extract

import (
	"testing"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

func TestExtractWatchValue_GDBShape(t *testing.T) {
	m := mi.Mapping{"value": mi.StringValue("42")}
	v, err := ExtractWatchValue(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "42" {
		t.Errorf("got %q, want 42", v)
	}
}

func TestExtractWatchValue_LLDBShape(t *testing.T) {
	m := mi.Mapping{
		"changelist": mi.List{
			{Value: mi.Tuple{{Name: "name", Value: mi.StringValue("var1")}, {Name: "value", Value: mi.StringValue("7")}}},
		},
	}
	v, err := ExtractWatchValue(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "7" {
		t.Errorf("got %q, want 7", v)
	}
}

func TestExtractWatchChildren_EmptyAndSingleAndList(t *testing.T) {
	empty := ExtractWatchChildren(mi.Mapping{})
	if len(empty) != 0 {
		t.Errorf("expected no children, got %d", len(empty))
	}

	single := ExtractWatchChildren(mi.Mapping{
		"children": mi.Tuple{{Name: "name", Value: mi.StringValue("x")}, {Name: "exp", Value: mi.StringValue("x")}, {Name: "numchild", Value: mi.StringValue("0")}},
	})
	if len(single) != 1 {
		t.Fatalf("expected 1 child, got %d", len(single))
	}

	list := ExtractWatchChildren(mi.Mapping{
		"children": mi.List{
			{Value: mi.Tuple{{Name: "name", Value: mi.StringValue("a")}, {Name: "exp", Value: mi.StringValue("a")}}},
			{Value: mi.Tuple{{Name: "name", Value: mi.StringValue("b")}, {Name: "exp", Value: mi.StringValue("b")}}},
		},
	})
	if len(list) != 2 {
		t.Fatalf("expected 2 children, got %d", len(list))
	}
}

func TestExtractWatchAttributes(t *testing.T) {
	single := ExtractWatchAttributes(mi.Mapping{"status": mi.StringValue("editable")})
	if len(single) != 1 || single[0] != "editable" {
		t.Errorf("unexpected attrs: %+v", single)
	}
	listAttr := ExtractWatchAttributes(mi.Mapping{"attr": mi.List{{Value: mi.StringValue("editable")}}})
	if len(listAttr) != 1 || listAttr[0] != "editable" {
		t.Errorf("unexpected attrs: %+v", listAttr)
	}
}
