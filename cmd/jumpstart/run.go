package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"time"

	"golang.org/x/term"

	"github.com/1broseidon/jumpstart/internal/config"
	"github.com/1broseidon/jumpstart/internal/placement"
	"github.com/1broseidon/jumpstart/internal/platform"
)

// palette holds the ANSI codes for run output. All fields are empty
// when stdout is not a terminal, so piped output stays plain.
type palette struct {
	green string
	red   string
	reset string
}

func newPalette(isTTY bool) palette {
	if !isTTY {
		return palette{}
	}
	return palette{green: "\033[32m", red: "\033[31m", reset: "\033[0m"}
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: jumpstart run [--config PATH] [--timeout DUR] [--dry-run] [app ...]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Launch every configured application and move its window to its")
		fmt.Fprintln(os.Stderr, "half-monitor slot. Pass application names to place a subset.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/jumpstart/config.yaml)")
	timeout := fs.Duration("timeout", 0, "Override the per-application window wait timeout (e.g. 10s)")
	dryRun := fs.Bool("dry-run", false, "Resolve target rectangles without launching anything")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfigAt(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *timeout > 0 {
		cfg.WindowTimeoutMS = timeoutMillis(*timeout)
	}

	specs, err := placement.FilterSpecs(cfg.Specs(), fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	backend, err := platform.NewX11Backend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Close()

	p := newPalette(term.IsTerminal(int(os.Stdout.Fd())))

	if *dryRun {
		return runDryRun(backend, specs, p)
	}

	locator := placement.NewLocator(backend, cfg.WindowTimeout(), cfg.PollInterval())
	orch := placement.NewOrchestrator(backend, placement.ExecLauncher{}, locator, backend, placement.Options{
		LaunchDelay: cfg.LaunchDelay(),
	})

	outcomes, err := orch.Run(specs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	failures := 0
	for _, oc := range outcomes {
		fmt.Println(formatOutcome(p, oc))
		if !oc.Success() {
			failures++
		}
	}

	notifyDesktop("jumpstart", fmt.Sprintf("%d/%d applications placed", len(outcomes)-failures, len(outcomes)))

	if failures > 0 {
		return 1
	}
	return 0
}

// runDryRun prints the resolved target rectangle for every spec
// without launching or moving anything.
func runDryRun(monitors placement.MonitorSource, specs []placement.ApplicationSpec, p palette) int {
	active, err := monitors.Monitors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enumerate monitors: %v\n", err)
		return 1
	}

	exit := 0
	for _, spec := range specs {
		target, err := placement.TargetRect(active, spec)
		if err != nil {
			fmt.Printf("%sFAIL%s  %s: %v\n", p.red, p.reset, spec.Name, err)
			exit = 1
			continue
		}
		fmt.Printf("%sPLAN%s  %s: display %d %s at (%d,%d) %dx%d\n",
			p.green, p.reset, spec.Name, spec.Display, spec.Side,
			target.X, target.Y, target.Width, target.Height)
	}
	return exit
}

func formatOutcome(p palette, oc placement.Outcome) string {
	if oc.Success() {
		return fmt.Sprintf("%s  OK%s  %s: %s", p.green, p.reset, oc.App, oc.Describe())
	}
	return fmt.Sprintf("%sFAIL%s  %s: %s", p.red, p.reset, oc.App, oc.Describe())
}

// timeoutMillis converts a flag duration to whole milliseconds,
// rounding up so a sub-millisecond override never truncates to zero
// and falls back to the config default.
func timeoutMillis(d time.Duration) int {
	ms := int((d + time.Millisecond - 1) / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return ms
}

func loadConfigAt(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// notifyDesktop sends a desktop notification using notify-send (if available).
// Failures are silently ignored since notifications are non-critical.
func notifyDesktop(summary, body string) {
	cmd := exec.Command("notify-send", "-a", "jumpstart", "-i", "preferences-system-windows", summary, body)
	_ = cmd.Start() // Fire and forget
}
