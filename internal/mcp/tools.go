package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/jumpstart/internal/placement"
)

// resultPlanned marks a dry-run entry whose target rectangle resolved.
const resultPlanned = "planned"

func (s *Server) handleRunPlacement(_ context.Context, _ *mcpsdk.CallToolRequest, args RunPlacementInput) (*mcpsdk.CallToolResult, RunPlacementOutput, error) {
	cfg, err := s.loadConfig(s.configPath)
	if err != nil {
		return nil, RunPlacementOutput{}, err
	}

	specs, err := placement.FilterSpecs(cfg.Specs(), args.Apps)
	if err != nil {
		return nil, RunPlacementOutput{}, err
	}

	backend, err := s.openBackend()
	if err != nil {
		return nil, RunPlacementOutput{}, err
	}
	defer backend.Close()

	if args.DryRun {
		out, err := planPlacements(backend, specs)
		if err != nil {
			return nil, RunPlacementOutput{}, err
		}
		return nil, out, nil
	}

	locator := placement.NewLocator(backend, cfg.WindowTimeout(), cfg.PollInterval())
	orch := placement.NewOrchestrator(backend, s.newLauncher(), locator, backend, placement.Options{
		LaunchDelay: cfg.LaunchDelay(),
	})

	outcomes, err := orch.Run(specs)
	if err != nil {
		return nil, RunPlacementOutput{}, err
	}

	out := RunPlacementOutput{Outcomes: make([]PlacementOutcome, 0, len(outcomes))}
	for i, oc := range outcomes {
		po := PlacementOutcome{
			App:     oc.App,
			Display: specs[i].Display,
			Side:    string(specs[i].Side),
			Result:  string(oc.Result),
		}
		if oc.Err != nil {
			po.Error = oc.Err.Error()
		}
		if !oc.Success() {
			out.Failures++
		}
		out.Outcomes = append(out.Outcomes, po)
	}
	return nil, out, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	backend, err := s.openBackend()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}
	defer backend.Close()

	monitors, err := backend.Monitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorInfo, 0, len(monitors))}
	for _, m := range monitors {
		out.Monitors = append(out.Monitors, MonitorInfo{
			Index:  m.Index,
			Name:   m.Name,
			Usable: rectInfo(m.Usable),
		})
	}
	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	backend, err := s.openBackend()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	defer backend.Close()

	windows, err := backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowInfo{ID: w.ID, Title: w.Title})
	}
	return nil, out, nil
}

// planPlacements resolves target rectangles without launching anything.
func planPlacements(monitors placement.MonitorSource, specs []placement.ApplicationSpec) (RunPlacementOutput, error) {
	active, err := monitors.Monitors()
	if err != nil {
		return RunPlacementOutput{}, fmt.Errorf("failed to enumerate monitors: %w", err)
	}

	out := RunPlacementOutput{
		Outcomes: make([]PlacementOutcome, 0, len(specs)),
		DryRun:   true,
	}
	for _, spec := range specs {
		po := PlacementOutcome{
			App:     spec.Name,
			Display: spec.Display,
			Side:    string(spec.Side),
		}
		target, err := placement.TargetRect(active, spec)
		if err != nil {
			po.Result = string(placement.ResultInvalidMonitor)
			po.Error = err.Error()
			out.Failures++
		} else {
			po.Result = resultPlanned
			r := rectInfo(target)
			po.Target = &r
		}
		out.Outcomes = append(out.Outcomes, po)
	}
	return out, nil
}

func rectInfo(r placement.Rect) RectInfo {
	return RectInfo{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
