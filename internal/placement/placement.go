package placement

import "fmt"

// Rect describes a rectangular region in desktop coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Side is the half-monitor slot an application is placed into.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Monitor describes a physical display and its usable work area.
// Index is 1-based; index 1 is the primary display.
type Monitor struct {
	Index  int
	Name   string
	Usable Rect
}

// Window is a top-level window visible on the desktop. The ID is only
// valid while the window exists; it is never persisted.
type Window struct {
	ID    uint32
	Title string
}

// ApplicationSpec is one configured application: what to launch and
// where its window goes. Name doubles as the window-title search key.
type ApplicationSpec struct {
	Name       string
	Display    int
	Side       Side
	Executable string
}

// Result classifies the outcome of one placement attempt.
type Result string

const (
	ResultSuccess        Result = "success"
	ResultLaunchFailed   Result = "launch_failed"
	ResultWindowNotFound Result = "window_not_found"
	ResultInvalidMonitor Result = "invalid_monitor"
	ResultPositionFailed Result = "position_failed"
)

// Outcome is the per-application result of one run. Err carries the
// underlying failure for launch_failed and position_failed.
type Outcome struct {
	App    string
	Result Result
	Err    error
}

// Success reports whether the application was placed.
func (o Outcome) Success() bool {
	return o.Result == ResultSuccess
}

// Describe returns a short human-readable account of the outcome.
func (o Outcome) Describe() string {
	switch o.Result {
	case ResultSuccess:
		return "placed"
	case ResultInvalidMonitor:
		return "configured display does not exist"
	case ResultLaunchFailed:
		return fmt.Sprintf("launch failed: %v", o.Err)
	case ResultWindowNotFound:
		return "no window matched within the timeout"
	case ResultPositionFailed:
		return fmt.Sprintf("move/resize failed: %v", o.Err)
	default:
		return string(o.Result)
	}
}

// MonitorSource enumerates connected displays. Implementations must
// return a stable ordering within one call.
type MonitorSource interface {
	Monitors() ([]Monitor, error)
}

// Launcher starts an external executable without waiting for it.
type Launcher interface {
	Launch(executable string) error
}

// WindowLister enumerates the current top-level windows.
type WindowLister interface {
	ListWindows() ([]Window, error)
}

// WindowMover applies a target rectangle to a live window.
type WindowMover interface {
	MoveResize(windowID uint32, bounds Rect) error
}
