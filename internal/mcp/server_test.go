package mcp

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/1broseidon/jumpstart/internal/config"
	"github.com/1broseidon/jumpstart/internal/placement"
	"github.com/1broseidon/jumpstart/internal/platform"
)

type fakeBackend struct {
	monitors    []placement.Monitor
	monitorsErr error
	windows     []placement.Window
	moves       map[uint32]placement.Rect
	moveErr     error
	closed      bool
}

func (b *fakeBackend) Monitors() ([]placement.Monitor, error) {
	return b.monitors, b.monitorsErr
}

func (b *fakeBackend) ListWindows() ([]placement.Window, error) {
	return b.windows, nil
}

func (b *fakeBackend) MoveResize(windowID uint32, bounds placement.Rect) error {
	if b.moveErr != nil {
		return b.moveErr
	}
	if b.moves == nil {
		b.moves = make(map[uint32]placement.Rect)
	}
	b.moves[windowID] = bounds
	return nil
}

func (b *fakeBackend) Close() { b.closed = true }

type fakeLauncher struct {
	calls []string
	err   error
}

func (l *fakeLauncher) Launch(executable string) error {
	l.calls = append(l.calls, executable)
	return l.err
}

func testConfig() *config.Config {
	return &config.Config{
		Applications: []config.Application{
			{Name: "Teams", Display: 1, Side: "left", Executable: "teams"},
			{Name: "Slack", Display: 2, Side: "right", Executable: "slack"},
		},
		WindowTimeoutMS: 50,
		PollIntervalMS:  10,
		LaunchDelayMS:   0,
	}
}

func newTestServer(cfg *config.Config, backend *fakeBackend, launcher *fakeLauncher) *Server {
	s := NewServer("")
	s.loadConfig = func(string) (*config.Config, error) { return cfg, nil }
	s.openBackend = func() (platform.Backend, error) { return backend, nil }
	s.newLauncher = func() placement.Launcher { return launcher }
	return s
}

func twoMonitorBackend() *fakeBackend {
	return &fakeBackend{
		monitors: []placement.Monitor{
			{Index: 1, Name: "eDP-1", Usable: placement.Rect{X: 0, Y: 0, Width: 1920, Height: 1040}},
			{Index: 2, Name: "HDMI-1", Usable: placement.Rect{X: 1920, Y: 0, Width: 2560, Height: 1400}},
		},
		windows: []placement.Window{
			{ID: 11, Title: "Microsoft Teams"},
			{ID: 22, Title: "Slack - workspace"},
		},
	}
}

func TestHandleRunPlacement(t *testing.T) {
	backend := twoMonitorBackend()
	launcher := &fakeLauncher{}
	s := newTestServer(testConfig(), backend, launcher)

	_, out, err := s.handleRunPlacement(context.Background(), nil, RunPlacementInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Outcomes) != 2 || out.Failures != 0 {
		t.Fatalf("unexpected output: %+v", out)
	}
	for _, oc := range out.Outcomes {
		if oc.Result != string(placement.ResultSuccess) {
			t.Errorf("%s: result %q, want success", oc.App, oc.Result)
		}
	}
	if len(launcher.calls) != 2 {
		t.Fatalf("expected 2 launches, got %v", launcher.calls)
	}

	want := placement.Rect{X: 3200, Y: 0, Width: 1280, Height: 1400}
	if got := backend.moves[22]; got != want {
		t.Fatalf("Slack moved to %+v, want %+v", got, want)
	}
	if !backend.closed {
		t.Fatal("backend was not closed")
	}
}

func TestHandleRunPlacement_DryRun(t *testing.T) {
	backend := twoMonitorBackend()
	launcher := &fakeLauncher{}
	cfg := testConfig()
	cfg.Applications = append(cfg.Applications,
		config.Application{Name: "Notion", Display: 5, Side: "left", Executable: "notion-app"})
	s := newTestServer(cfg, backend, launcher)

	_, out, err := s.handleRunPlacement(context.Background(), nil, RunPlacementInput{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(launcher.calls) != 0 {
		t.Fatalf("dry run must not launch, got %v", launcher.calls)
	}
	if len(backend.moves) != 0 {
		t.Fatalf("dry run must not move windows, got %v", backend.moves)
	}

	if !out.DryRun || len(out.Outcomes) != 3 || out.Failures != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.Outcomes[0].Result != resultPlanned || out.Outcomes[0].Target == nil {
		t.Fatalf("unexpected first outcome: %+v", out.Outcomes[0])
	}
	if got := *out.Outcomes[0].Target; got != (RectInfo{X: 0, Y: 0, Width: 960, Height: 1040}) {
		t.Fatalf("unexpected planned target: %+v", got)
	}
	if out.Outcomes[2].Result != string(placement.ResultInvalidMonitor) {
		t.Fatalf("unexpected third outcome: %+v", out.Outcomes[2])
	}
}

func TestHandleRunPlacement_AppsFilter(t *testing.T) {
	backend := twoMonitorBackend()
	launcher := &fakeLauncher{}
	s := newTestServer(testConfig(), backend, launcher)

	_, out, err := s.handleRunPlacement(context.Background(), nil, RunPlacementInput{Apps: []string{"slack"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Outcomes) != 1 || out.Outcomes[0].App != "Slack" {
		t.Fatalf("unexpected outcomes: %+v", out.Outcomes)
	}
	if len(launcher.calls) != 1 || launcher.calls[0] != "slack" {
		t.Fatalf("unexpected launches: %v", launcher.calls)
	}

	_, _, err = s.handleRunPlacement(context.Background(), nil, RunPlacementInput{Apps: []string{"Firefox"}})
	if err == nil || !strings.Contains(err.Error(), "no configured application matches") {
		t.Fatalf("expected unknown-app error, got %v", err)
	}
}

func TestHandleRunPlacement_MonitorErrorIsFatal(t *testing.T) {
	backend := &fakeBackend{monitorsErr: fmt.Errorf("randr unavailable")}
	s := newTestServer(testConfig(), backend, &fakeLauncher{})

	_, _, err := s.handleRunPlacement(context.Background(), nil, RunPlacementInput{})
	if err == nil {
		t.Fatal("expected error when monitor enumeration fails")
	}
}

func TestHandleListMonitors(t *testing.T) {
	backend := twoMonitorBackend()
	s := newTestServer(testConfig(), backend, &fakeLauncher{})

	_, out, err := s.handleListMonitors(context.Background(), nil, ListMonitorsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %+v", out.Monitors)
	}
	if out.Monitors[0].Index != 1 || out.Monitors[0].Name != "eDP-1" {
		t.Fatalf("unexpected first monitor: %+v", out.Monitors[0])
	}
	if out.Monitors[1].Usable != (RectInfo{X: 1920, Y: 0, Width: 2560, Height: 1400}) {
		t.Fatalf("unexpected second monitor: %+v", out.Monitors[1])
	}
	if !backend.closed {
		t.Fatal("backend was not closed")
	}
}

func TestHandleListWindows(t *testing.T) {
	backend := twoMonitorBackend()
	s := newTestServer(testConfig(), backend, &fakeLauncher{})

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Windows) != 2 || out.Windows[0].ID != 11 || out.Windows[1].Title != "Slack - workspace" {
		t.Fatalf("unexpected windows: %+v", out.Windows)
	}
}
