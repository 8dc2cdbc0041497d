package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/jumpstart/internal/placement"
)

const (
	DefaultWindowTimeoutMS = 5000
	DefaultPollIntervalMS  = 250
	DefaultLaunchDelayMS   = 2000
)

// Application is one configured application: what to launch and where
// its window goes.
type Application struct {
	// Name identifies the application in output and doubles as the
	// case-insensitive window-title search key.
	Name string `yaml:"name"`
	// Display is the 1-based monitor index; display 1 is the primary.
	Display int `yaml:"display"`
	// Side is "left" or "right" (case-insensitive).
	Side string `yaml:"side"`
	// Executable is a bare name resolved via PATH, an absolute path,
	// or a command line with arguments.
	Executable string `yaml:"executable"`
}

// Config is the declarative workspace description.
type Config struct {
	Applications []Application `yaml:"applications"`

	// WindowTimeoutMS bounds how long to poll for each application's
	// window after launch (default 5000).
	WindowTimeoutMS int `yaml:"window_timeout_ms,omitempty"`
	// PollIntervalMS is the sleep between window-list polls (default 250).
	PollIntervalMS int `yaml:"poll_interval_ms,omitempty"`
	// LaunchDelayMS is the settle wait between spawning an application
	// and the first window poll (default 2000).
	LaunchDelayMS int `yaml:"launch_delay_ms,omitempty"`
}

func (c *Config) applyDefaults() {
	if c.WindowTimeoutMS <= 0 {
		c.WindowTimeoutMS = DefaultWindowTimeoutMS
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = DefaultPollIntervalMS
	}
	if c.LaunchDelayMS < 0 {
		c.LaunchDelayMS = DefaultLaunchDelayMS
	}
}

// Validate checks every application entry. Invalid entries are
// rejected here so the placement core never sees them.
func (c *Config) Validate() error {
	if len(c.Applications) == 0 {
		return fmt.Errorf("config has no applications")
	}
	for i, app := range c.Applications {
		if strings.TrimSpace(app.Name) == "" {
			return fmt.Errorf("applications[%d]: name is required", i)
		}
		if strings.TrimSpace(app.Executable) == "" {
			return fmt.Errorf("applications[%d] (%s): executable is required", i, app.Name)
		}
		if app.Display < 1 {
			return fmt.Errorf("applications[%d] (%s): display must be >= 1, got %d", i, app.Name, app.Display)
		}
		if _, err := ParseSide(app.Side); err != nil {
			return fmt.Errorf("applications[%d] (%s): %w", i, app.Name, err)
		}
	}
	return nil
}

// ParseSide converts a config side string to a placement side.
func ParseSide(s string) (placement.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return placement.SideLeft, nil
	case "right":
		return placement.SideRight, nil
	default:
		return "", fmt.Errorf("invalid side %q (want left or right)", s)
	}
}

// Specs converts the validated application list into placement specs,
// preserving configuration order.
func (c *Config) Specs() []placement.ApplicationSpec {
	specs := make([]placement.ApplicationSpec, 0, len(c.Applications))
	for _, app := range c.Applications {
		side, err := ParseSide(app.Side)
		if err != nil {
			// Validate rejects these before Specs is called.
			side = placement.SideLeft
		}
		specs = append(specs, placement.ApplicationSpec{
			Name:       app.Name,
			Display:    app.Display,
			Side:       side,
			Executable: app.Executable,
		})
	}
	return specs
}

// WindowTimeout returns the window-poll timeout as a duration.
func (c *Config) WindowTimeout() time.Duration {
	return time.Duration(c.WindowTimeoutMS) * time.Millisecond
}

// PollInterval returns the window-poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// LaunchDelay returns the post-launch settle delay as a duration.
func (c *Config) LaunchDelay() time.Duration {
	return time.Duration(c.LaunchDelayMS) * time.Millisecond
}
