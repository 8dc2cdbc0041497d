package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// exampleConfig is the starter configuration written by `config init`.
// The application set mirrors a typical two-monitor work setup.
const exampleConfig = `# jumpstart configuration
#
# Each application is launched and its window moved to one half of the
# given display. Display 1 is the primary monitor. The name is also the
# case-insensitive window-title search key.

applications:
  - name: Teams
    display: 1
    side: left
    executable: teams

  - name: Outlook
    display: 1
    side: right
    executable: outlook

  - name: Slack
    display: 2
    side: left
    executable: slack

  - name: Notion
    display: 2
    side: right
    executable: notion-app

# How long to wait for each window to appear, and how often to look.
window_timeout_ms: 5000
poll_interval_ms: 250

# Settle time between launching an application and the first poll.
launch_delay_ms: 2000
`

// WriteExample writes the starter config to path, refusing to clobber
// an existing file. Parent directories are created as needed.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
