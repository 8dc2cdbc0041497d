package placement

import (
	"fmt"
	"testing"
)

type fakeMonitors struct {
	monitors []Monitor
	err      error
}

func (f *fakeMonitors) Monitors() ([]Monitor, error) {
	return f.monitors, f.err
}

type fakeLauncher struct {
	calls  []string
	failOn map[string]error
}

func (f *fakeLauncher) Launch(executable string) error {
	f.calls = append(f.calls, executable)
	if f.failOn != nil {
		if err, ok := f.failOn[executable]; ok {
			return err
		}
	}
	return nil
}

type fakeLocator struct {
	calls   []string
	windows map[string]Window
}

func (f *fakeLocator) Locate(titleSubstring string) (Window, bool) {
	f.calls = append(f.calls, titleSubstring)
	w, ok := f.windows[titleSubstring]
	return w, ok
}

type fakeMover struct {
	moves map[uint32]Rect
	err   error
}

func (f *fakeMover) MoveResize(windowID uint32, bounds Rect) error {
	if f.err != nil {
		return f.err
	}
	if f.moves == nil {
		f.moves = make(map[uint32]Rect)
	}
	f.moves[windowID] = bounds
	return nil
}

func twoMonitors() *fakeMonitors {
	return &fakeMonitors{monitors: []Monitor{
		{Index: 1, Name: "eDP-1", Usable: Rect{X: 0, Y: 0, Width: 1920, Height: 1040}},
		{Index: 2, Name: "HDMI-1", Usable: Rect{X: 1920, Y: 0, Width: 2560, Height: 1400}},
	}}
}

func TestRun_PlacesConfiguredApplication(t *testing.T) {
	launcher := &fakeLauncher{}
	locator := &fakeLocator{windows: map[string]Window{
		"Teams": {ID: 1001, Title: "Microsoft Teams"},
	}}
	mover := &fakeMover{}
	o := NewOrchestrator(twoMonitors(), launcher, locator, mover, Options{})

	outcomes, err := o.Run([]ApplicationSpec{
		{Name: "Teams", Display: 1, Side: SideLeft, Executable: "teams"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Result != ResultSuccess {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}

	got, ok := mover.moves[1001]
	if !ok {
		t.Fatal("expected window 1001 to be moved")
	}
	want := Rect{X: 0, Y: 0, Width: 960, Height: 1040}
	if got != want {
		t.Fatalf("expected target %+v, got %+v", want, got)
	}
}

func TestRun_RightSideTargetRect(t *testing.T) {
	launcher := &fakeLauncher{}
	locator := &fakeLocator{windows: map[string]Window{
		"Teams": {ID: 1001, Title: "Microsoft Teams"},
	}}
	mover := &fakeMover{}
	o := NewOrchestrator(twoMonitors(), launcher, locator, mover, Options{})

	_, err := o.Run([]ApplicationSpec{
		{Name: "Teams", Display: 1, Side: SideRight, Executable: "teams"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Rect{X: 960, Y: 0, Width: 960, Height: 1040}
	if got := mover.moves[1001]; got != want {
		t.Fatalf("expected target %+v, got %+v", want, got)
	}
}

func TestRun_OneOutcomePerSpecInInputOrder(t *testing.T) {
	launcher := &fakeLauncher{failOn: map[string]error{
		"missing-bin": fmt.Errorf("executable file not found in $PATH"),
	}}
	locator := &fakeLocator{windows: map[string]Window{
		"Teams": {ID: 1, Title: "Microsoft Teams"},
	}}
	mover := &fakeMover{}
	o := NewOrchestrator(twoMonitors(), launcher, locator, mover, Options{})

	specs := []ApplicationSpec{
		{Name: "Teams", Display: 1, Side: SideLeft, Executable: "teams"},
		{Name: "Ghost", Display: 2, Side: SideRight, Executable: "missing-bin"},
		{Name: "Nowhere", Display: 5, Side: SideLeft, Executable: "whatever"},
		{Name: "Quiet", Display: 2, Side: SideLeft, Executable: "quiet-app"},
	}
	outcomes, err := o.Run(specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != len(specs) {
		t.Fatalf("expected %d outcomes, got %d", len(specs), len(outcomes))
	}

	wantResults := []Result{ResultSuccess, ResultLaunchFailed, ResultInvalidMonitor, ResultWindowNotFound}
	for i, want := range wantResults {
		if outcomes[i].App != specs[i].Name {
			t.Errorf("outcome %d: expected app %q, got %q", i, specs[i].Name, outcomes[i].App)
		}
		if outcomes[i].Result != want {
			t.Errorf("outcome %d (%s): expected %s, got %s", i, specs[i].Name, want, outcomes[i].Result)
		}
	}
}

func TestRun_InvalidMonitorSkipsLaunchAndLocate(t *testing.T) {
	launcher := &fakeLauncher{}
	locator := &fakeLocator{}
	o := NewOrchestrator(twoMonitors(), launcher, locator, &fakeMover{}, Options{})

	outcomes, err := o.Run([]ApplicationSpec{
		{Name: "App", Display: 5, Side: SideLeft, Executable: "app"},
		{Name: "Zero", Display: 0, Side: SideLeft, Executable: "zero"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, o := range outcomes {
		if o.Result != ResultInvalidMonitor {
			t.Fatalf("expected invalid_monitor, got %s", o.Result)
		}
	}
	if len(launcher.calls) != 0 {
		t.Fatalf("launcher must not be called for invalid monitors, got %v", launcher.calls)
	}
	if len(locator.calls) != 0 {
		t.Fatalf("locator must not be called for invalid monitors, got %v", locator.calls)
	}
}

func TestRun_LaunchFailureSkipsLocate(t *testing.T) {
	launcher := &fakeLauncher{failOn: map[string]error{
		"broken": fmt.Errorf("permission denied"),
	}}
	locator := &fakeLocator{}
	o := NewOrchestrator(twoMonitors(), launcher, locator, &fakeMover{}, Options{})

	outcomes, err := o.Run([]ApplicationSpec{
		{Name: "Broken", Display: 1, Side: SideLeft, Executable: "broken"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcomes[0].Result != ResultLaunchFailed {
		t.Fatalf("expected launch_failed, got %s", outcomes[0].Result)
	}
	if outcomes[0].Err == nil {
		t.Fatal("expected launch error to be carried in the outcome")
	}
	if len(locator.calls) != 0 {
		t.Fatalf("locator must not be called after launch failure, got %v", locator.calls)
	}
}

func TestRun_PositionFailureIsItemScoped(t *testing.T) {
	launcher := &fakeLauncher{}
	locator := &fakeLocator{windows: map[string]Window{
		"Teams":   {ID: 1, Title: "Microsoft Teams"},
		"Outlook": {ID: 2, Title: "Inbox - Outlook"},
	}}
	mover := &fakeMover{err: fmt.Errorf("window gone")}
	o := NewOrchestrator(twoMonitors(), launcher, locator, mover, Options{})

	outcomes, err := o.Run([]ApplicationSpec{
		{Name: "Teams", Display: 1, Side: SideLeft, Executable: "teams"},
		{Name: "Outlook", Display: 1, Side: SideRight, Executable: "outlook"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcomes[0].Result != ResultPositionFailed || outcomes[1].Result != ResultPositionFailed {
		t.Fatalf("expected both items position_failed, got %+v", outcomes)
	}
	// Both items were attempted: a failed item never blocks the batch.
	if len(launcher.calls) != 2 {
		t.Fatalf("expected 2 launches, got %d", len(launcher.calls))
	}
}

func TestRun_MonitorEnumerationFailureIsFatal(t *testing.T) {
	o := NewOrchestrator(&fakeMonitors{err: fmt.Errorf("randr query failed")},
		&fakeLauncher{}, &fakeLocator{}, &fakeMover{}, Options{})

	if _, err := o.Run([]ApplicationSpec{{Name: "App", Display: 1, Side: SideLeft, Executable: "app"}}); err == nil {
		t.Fatal("expected fatal error when monitors cannot be enumerated")
	}
}

func TestRun_EmptySpecListYieldsNoOutcomes(t *testing.T) {
	o := NewOrchestrator(twoMonitors(), &fakeLauncher{}, &fakeLocator{}, &fakeMover{}, Options{})

	outcomes, err := o.Run(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(outcomes))
	}
}
