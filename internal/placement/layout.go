package placement

import "fmt"

// HalfRect computes the target rectangle for one side of a monitor's
// usable area. The left half gets floor(width/2); the right half gets
// the remainder, so the two halves always partition the usable width
// exactly and share the boundary at usable.X + floor(width/2).
// Degenerate input rectangles propagate unchanged; monitor-rect sanity
// is the caller's concern.
func HalfRect(usable Rect, side Side) Rect {
	leftWidth := usable.Width / 2

	if side == SideRight {
		return Rect{
			X:      usable.X + leftWidth,
			Y:      usable.Y,
			Width:  usable.Width - leftWidth,
			Height: usable.Height,
		}
	}

	return Rect{
		X:      usable.X,
		Y:      usable.Y,
		Width:  leftWidth,
		Height: usable.Height,
	}
}

// TargetRect resolves a spec's half-monitor rectangle against an
// ordered monitor list. Display indices are 1-based; an out-of-range
// display is an error so callers can skip the launch entirely.
func TargetRect(monitors []Monitor, spec ApplicationSpec) (Rect, error) {
	if spec.Display < 1 || spec.Display > len(monitors) {
		return Rect{}, fmt.Errorf("display %d out of range (have %d monitors)", spec.Display, len(monitors))
	}
	return HalfRect(monitors[spec.Display-1].Usable, spec.Side), nil
}
