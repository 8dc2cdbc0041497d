//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/jumpstart/internal/placement"
	"github.com/1broseidon/jumpstart/internal/x11"
)

// X11Backend implements Backend on top of an X11 connection.
type X11Backend struct {
	conn *x11.Connection
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend opens a fresh X11 connection.
func NewX11Backend() (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &X11Backend{conn: conn}, nil
}

// Close disconnects from the X server.
func (b *X11Backend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Monitors enumerates active displays, primary first, with 1-based
// indices assigned in that order.
func (b *X11Backend) Monitors() ([]placement.Monitor, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	out := make([]placement.Monitor, 0, len(monitors))
	for i, m := range monitors {
		out = append(out, placement.Monitor{
			Index: i + 1,
			Name:  m.Name,
			Usable: placement.Rect{
				X:      m.Usable.X,
				Y:      m.Usable.Y,
				Width:  m.Usable.Width,
				Height: m.Usable.Height,
			},
		})
	}
	return out, nil
}

// ListWindows returns the current top-level windows with titles.
func (b *X11Backend) ListWindows() ([]placement.Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	windows, err := conn.ListWindows()
	if err != nil {
		return nil, err
	}

	out := make([]placement.Window, 0, len(windows))
	for _, w := range windows {
		out = append(out, placement.Window{ID: w.ID, Title: w.Title})
	}
	return out, nil
}

// MoveResize moves and resizes a window to the given bounds.
func (b *X11Backend) MoveResize(windowID uint32, bounds placement.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	return conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

func (b *X11Backend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
