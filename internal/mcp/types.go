package mcp

// RunPlacementInput is the input for the run_placement tool.
type RunPlacementInput struct {
	Apps   []string `json:"apps,omitempty" jsonschema:"Optional application names to place (case-insensitive). When omitted, every configured application is placed."`
	DryRun bool     `json:"dry_run,omitempty" jsonschema:"When true, report the planned target rectangles without launching or moving anything."`
}

// PlacementOutcome describes what happened to one configured application.
type PlacementOutcome struct {
	App     string `json:"app"`
	Display int    `json:"display"`
	Side    string `json:"side"`
	Result  string `json:"result"`
	Error   string `json:"error,omitempty"`
	// Target is set for planned placements in dry runs.
	Target *RectInfo `json:"target,omitempty"`
}

// RunPlacementOutput is the output for the run_placement tool.
type RunPlacementOutput struct {
	Outcomes []PlacementOutcome `json:"outcomes"`
	Failures int                `json:"failures"`
	DryRun   bool               `json:"dry_run,omitempty"`
}

// RectInfo is a screen rectangle in root coordinates.
type RectInfo struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorInfo describes one active display.
type MonitorInfo struct {
	Index  int      `json:"index"`
	Name   string   `json:"name"`
	Usable RectInfo `json:"usable"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one titled top-level window.
type WindowInfo struct {
	ID    uint32 `json:"id"`
	Title string `json:"title"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}
