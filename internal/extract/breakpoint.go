package extract

import (
	"fmt"
	"strconv"

	"github.com/schreinerhq/gdbmi/internal/mi"
)

// Breakpoint extracts a Breakpoint (and its locations) from the value found
// under a "bkpt" key. a single tuple means one breakpoint with
// one location (zero if addr="<PENDING>"); a list means the first element
// is the header and the rest are its locations.
func ExtractBreakpoint(v mi.Value) (Breakpoint, error) {
	switch t := v.(type) {
	case mi.Tuple:
		return extractBreakpointSingle(t)
	case mi.List:
		if len(t) == 0 {
			return Breakpoint{}, fmt.Errorf("extract: empty bkpt list")
		}
		header, ok := t[0].Value.(mi.Tuple)
		if !ok {
			return Breakpoint{}, fmt.Errorf("extract: bkpt header is not a tuple")
		}
		bp, err := extractBreakpointHeader(mi.ToMapping(header))
		if err != nil {
			return Breakpoint{}, err
		}
		for _, item := range t[1:] {
			loc, ok := item.Value.(mi.Tuple)
			if !ok {
				continue
			}
			bp.Locations = append(bp.Locations, extractLocation(mi.ToMapping(loc)))
		}
		return bp, nil
	default:
		return Breakpoint{}, fmt.Errorf("extract: bkpt is neither a tuple nor a list (%T)", v)
	}
}

func extractBreakpointSingle(t mi.Tuple) (Breakpoint, error) {
	m := mi.ToMapping(t)
	bp, err := extractBreakpointHeader(m)
	if err != nil {
		return Breakpoint{}, err
	}
	if str(m, "addr", "") == "<PENDING>" {
		return bp, nil
	}
	loc := extractLocation(m)
	loc.ID = fmt.Sprintf("%d.1", bp.ID)
	bp.Locations = []Location{loc}
	return bp, nil
}

func extractBreakpointHeader(m mi.Mapping) (Breakpoint, error) {
	var bp Breakpoint
	id, err := strconv.Atoi(str(m, "number", ""))
	if err != nil {
		return Breakpoint{}, fmt.Errorf("extract: breakpoint has no numeric number: %w", err)
	}
	bp.ID = id
	bp.Type = str(m, "type", "")
	bp.CatchType = strPtr(m, "catch-type")
	if disp := m.StrPtr("disp"); disp != nil {
		bp.IsTemp = boolPtr(*disp == "del")
	}
	bp.IsEnabled = boolYN(m, "enabled")
	bp.Pending = strPtr(m, "pending")
	bp.EvaluatedBy = strPtr(m, "evaluated-by")
	bp.ThreadID = intPtr(m, "thread")
	bp.Condition = strPtr(m, "cond")
	bp.IgnoreCount = intPtr(m, "ignore")
	bp.EnableCount = intPtr(m, "enable")
	bp.Mask = strPtr(m, "mask")
	bp.PassCount = intPtr(m, "pass")
	bp.OriginalLocation = strPtr(m, "original-location")
	bp.HitCount = intPtr(m, "times")
	bp.IsInstalled = boolYN(m, "installed")
	bp.What = strPtr(m, "what")
	return bp, nil
}

func extractLocation(m mi.Mapping) Location {
	return Location{
		ID:        str(m, "number", ""),
		IsEnabled: boolYN(m, "enabled"),
		Address:   strPtr(m, "addr"),
		Func:      strPtr(m, "func"),
		Filename:  strPtr(m, "file"),
		Fullname:  strPtr(m, "fullname"),
		Line:      intPtr(m, "line"),
		At:        strPtr(m, "at"),
	}
}
