package placement

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const placementDebugEnv = "JUMPSTART_DEBUG_PLACEMENT"

func placementDebugEnabled() bool {
	v := strings.TrimSpace(os.Getenv(placementDebugEnv))
	if v == "" {
		return false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func newPlacementDebugf() func(format string, args ...any) {
	if !placementDebugEnabled() {
		return nil
	}
	return func(format string, args ...any) {
		log.Printf("placement: debug: "+format, args...)
	}
}

// WindowLocator is the orchestrator's view of the Locator: given a
// title search key, return the matching window or report that none
// appeared in time.
type WindowLocator interface {
	Locate(titleSubstring string) (Window, bool)
}

// Options tunes one placement run.
type Options struct {
	// LaunchDelay is the settle wait between spawning an application
	// and the first window poll. Newly launched applications often show
	// a splash window first; a short settle avoids binding to it.
	LaunchDelay time.Duration
}

// Orchestrator drives one end-to-end run: for each configured
// application, launch it, wait for its window, and move the window to
// its half-monitor slot. Items are processed strictly sequentially and
// a failed item never blocks the rest of the batch.
type Orchestrator struct {
	Monitors MonitorSource
	Launcher Launcher
	Locator  WindowLocator
	Mover    WindowMover
	Opts     Options

	sleep func(time.Duration)
}

// NewOrchestrator wires an orchestrator from its capabilities.
func NewOrchestrator(monitors MonitorSource, launcher Launcher, locator WindowLocator, mover WindowMover, opts Options) *Orchestrator {
	return &Orchestrator{
		Monitors: monitors,
		Launcher: launcher,
		Locator:  locator,
		Mover:    mover,
		Opts:     opts,
		sleep:    time.Sleep,
	}
}

// Run processes every spec in order and returns one Outcome per spec,
// in input order. The only fatal error is failing to enumerate
// monitors; without display geometry nothing can be placed.
func (o *Orchestrator) Run(specs []ApplicationSpec) ([]Outcome, error) {
	debugf := newPlacementDebugf()

	monitors, err := o.Monitors.Monitors()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate monitors: %w", err)
	}
	if debugf != nil {
		debugf("Run start monitors=%d specs=%d launch_delay=%s", len(monitors), len(specs), o.Opts.LaunchDelay)
		for _, m := range monitors {
			debugf("  monitor index=%d name=%q usable=(%d,%d %dx%d)", m.Index, m.Name, m.Usable.X, m.Usable.Y, m.Usable.Width, m.Usable.Height)
		}
	}

	outcomes := make([]Outcome, 0, len(specs))
	for _, spec := range specs {
		outcome := o.placeOne(spec, monitors, debugf)
		if !outcome.Success() {
			log.Printf("placement: %s: %s", spec.Name, outcome.Describe())
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// placeOne runs the full launch-locate-position sequence for a single
// application. Every failure path returns an item-scoped outcome.
func (o *Orchestrator) placeOne(spec ApplicationSpec, monitors []Monitor, debugf func(string, ...any)) Outcome {
	target, err := TargetRect(monitors, spec)
	if err != nil {
		// Invalid target monitor: do not launch, there is nowhere to
		// put the window.
		if debugf != nil {
			debugf("%s: %v", spec.Name, err)
		}
		return Outcome{App: spec.Name, Result: ResultInvalidMonitor}
	}

	if err := o.Launcher.Launch(spec.Executable); err != nil {
		return Outcome{App: spec.Name, Result: ResultLaunchFailed, Err: err}
	}
	if debugf != nil {
		debugf("%s: launched %q", spec.Name, spec.Executable)
	}

	if o.Opts.LaunchDelay > 0 {
		o.sleep(o.Opts.LaunchDelay)
	}

	window, found := o.Locator.Locate(spec.Name)
	if !found {
		return Outcome{App: spec.Name, Result: ResultWindowNotFound}
	}
	if debugf != nil {
		debugf("%s: matched window id=%d title=%q", spec.Name, window.ID, window.Title)
	}

	if err := o.Mover.MoveResize(window.ID, target); err != nil {
		// The window may have closed between discovery and positioning;
		// the run accepts that race rather than re-locating.
		return Outcome{App: spec.Name, Result: ResultPositionFailed, Err: err}
	}

	log.Printf("placement: %s: placed on display %d %s at (%d,%d) %dx%d",
		spec.Name, spec.Display, spec.Side, target.X, target.Y, target.Width, target.Height)
	return Outcome{App: spec.Name, Result: ResultSuccess}
}
