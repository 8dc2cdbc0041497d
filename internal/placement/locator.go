package placement

import (
	"strings"
	"time"
)

const (
	// DefaultLocateTimeout bounds how long Locate polls for a window.
	DefaultLocateTimeout = 5 * time.Second
	// DefaultPollInterval is the sleep between window-list polls.
	DefaultPollInterval = 250 * time.Millisecond
)

// Locator finds a top-level window by title substring, polling the
// desktop's window list until a match appears or the timeout elapses.
type Locator struct {
	Windows      WindowLister
	Timeout      time.Duration
	PollInterval time.Duration

	// Clock hooks, overridable in tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLocator creates a Locator over the given window lister. A
// non-positive timeout or poll interval falls back to the defaults.
func NewLocator(windows WindowLister, timeout, pollInterval time.Duration) *Locator {
	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Locator{
		Windows:      windows,
		Timeout:      timeout,
		PollInterval: pollInterval,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// Locate returns the first window whose title contains titleSubstring,
// ignoring case. Matching is deliberately permissive: applications
// often change their title between splash and main-window states, so an
// exact match would miss them. If several windows match, the first in
// enumeration order wins. Returns false if no match appears before the
// timeout.
func (l *Locator) Locate(titleSubstring string) (Window, bool) {
	deadline := l.now().Add(l.Timeout)

	for {
		windows, err := l.Windows.ListWindows()
		if err == nil {
			for _, w := range windows {
				if TitleMatches(w.Title, titleSubstring) {
					return w, true
				}
			}
		}

		if !l.now().Before(deadline) {
			return Window{}, false
		}
		l.sleep(l.PollInterval)
	}
}

// TitleMatches reports whether a window title matches the search key:
// case-insensitive substring. An empty key never matches.
func TitleMatches(title, key string) bool {
	if key == "" {
		return false
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(key))
}
