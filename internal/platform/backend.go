package platform

import "github.com/1broseidon/jumpstart/internal/placement"

// Backend abstracts window-system operations so the placement core can
// run against a test double instead of a real desktop.
type Backend interface {
	placement.MonitorSource
	placement.WindowLister
	placement.WindowMover

	Close()
}
