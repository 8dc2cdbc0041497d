package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Geometry is a rectangle in desktop coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Monitor represents a physical display. Bounds is the full monitor
// rectangle; Usable is Bounds minus dock/panel reserved regions.
type Monitor struct {
	Name    string
	Primary bool
	Bounds  Geometry
	Usable  Geometry
}

// GetMonitors retrieves all active monitors using XRandR. The primary
// monitor is always first; the remaining monitors keep CRTC
// enumeration order. Each monitor's usable area has dock struts
// subtracted (with a _NET_WORKAREA fallback when no struts are set).
func (c *Connection) GetMonitors() ([]Monitor, error) {
	// Initialize RandR if not already done
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	// Get screen resources
	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primaryOutput randr.Output
	if primary, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primaryOutput = primary.Output
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		// Get output name
		outputName := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			outputName = string(outputInfo.Name)
		}

		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if out == primaryOutput && primaryOutput != 0 {
				isPrimary = true
				break
			}
		}

		bounds := Geometry{
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}
		monitors = append(monitors, Monitor{
			Name:    outputName,
			Primary: isPrimary,
			Bounds:  bounds,
			Usable:  bounds,
		})
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no active monitors found")
	}

	// Primary first; remaining monitors keep enumeration order.
	for i := range monitors {
		if monitors[i].Primary && i != 0 {
			primary := monitors[i]
			copy(monitors[1:i+1], monitors[:i])
			monitors[0] = primary
			break
		}
	}
	if !monitors[0].Primary {
		// No primary output reported: treat the first enumerated
		// monitor as primary so callers always get a display 1.
		monitors[0].Primary = true
	}

	c.applyUsableAreas(monitors)

	return monitors, nil
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

// applyUsableAreas shrinks each monitor's usable rectangle by the dock
// struts that intersect it. Monitors untouched by any strut fall back
// to the _NET_WORKAREA intersection.
func (c *Connection) applyUsableAreas(monitors []Monitor) {
	strutApplied := make([]bool, len(monitors))

	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err == nil {
		rootWidth := int(rootGeom.Width)
		rootHeight := int(rootGeom.Height)

		if clients, err := ewmh.ClientListGet(c.XUtil); err == nil {
			for i := range monitors {
				if applied := applyDockStruts(c, &monitors[i].Usable, clients, rootWidth, rootHeight); applied {
					strutApplied[i] = true
				}
			}
		}
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return
	}
	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) >= 0 && int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}
	wa := workArea[desktopIndex]

	for i := range monitors {
		if strutApplied[i] {
			continue
		}
		usable := &monitors[i].Usable

		// Only adjust if the work area intersects this monitor
		x1 := max(usable.X, int(wa.X))
		y1 := max(usable.Y, int(wa.Y))
		x2 := min(usable.X+usable.Width, int(wa.X)+int(wa.Width))
		y2 := min(usable.Y+usable.Height, int(wa.Y)+int(wa.Height))

		if x2 > x1 && y2 > y1 {
			usable.X = x1
			usable.Y = y1
			usable.Width = x2 - x1
			usable.Height = y2 - y1
		}
	}
}

func applyDockStruts(c *Connection, usable *Geometry, clients []xproto.Window, rootWidth, rootHeight int) bool {
	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			updateStrutsForMonitor(usable, rootWidth, rootHeight, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			sp := &ewmh.WmStrutPartial{
				Left:         s.Left,
				Right:        s.Right,
				Top:          s.Top,
				Bottom:       s.Bottom,
				LeftStartY:   0,
				LeftEndY:     uint(rootHeight - 1),
				RightStartY:  0,
				RightEndY:    uint(rootHeight - 1),
				TopStartX:    0,
				TopEndX:      uint(rootWidth - 1),
				BottomStartX: 0,
				BottomEndX:   uint(rootWidth - 1),
			}
			updateStrutsForMonitor(usable, rootWidth, rootHeight, sp, &struts)
		}
	}

	if struts.left == 0 && struts.right == 0 && struts.top == 0 && struts.bottom == 0 {
		return false
	}

	usable.X += struts.left
	usable.Y += struts.top
	usable.Width -= (struts.left + struts.right)
	usable.Height -= (struts.top + struts.bottom)

	if usable.Width < 1 {
		usable.Width = 1
	}
	if usable.Height < 1 {
		usable.Height = 1
	}

	return true
}

func updateStrutsForMonitor(usable *Geometry, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	monX1 := usable.X
	monY1 := usable.Y
	monX2 := usable.X + usable.Width
	monY2 := usable.Y + usable.Height

	// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
	if sp.Top > 0 {
		x1 := int(sp.TopStartX)
		x2 := int(sp.TopEndX) + 1
		y1 := 0
		y2 := int(sp.Top)
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.top = max(acc.top, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).h)
		}
	}

	// Bottom strut: y=[rootHeight-Bottom,rootHeight), x=[BottomStartX,BottomEndX]
	if sp.Bottom > 0 {
		x1 := int(sp.BottomStartX)
		x2 := int(sp.BottomEndX) + 1
		y2 := rootHeight
		y1 := rootHeight - int(sp.Bottom)
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.bottom = max(acc.bottom, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).h)
		}
	}

	// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
	if sp.Left > 0 {
		x1 := 0
		x2 := int(sp.Left)
		y1 := int(sp.LeftStartY)
		y2 := int(sp.LeftEndY) + 1
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.left = max(acc.left, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).w)
		}
	}

	// Right strut: x=[rootWidth-Right,rootWidth), y=[RightStartY,RightEndY]
	if sp.Right > 0 {
		x2 := rootWidth
		x1 := rootWidth - int(sp.Right)
		y1 := int(sp.RightStartY)
		y2 := int(sp.RightEndY) + 1
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.right = max(acc.right, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).w)
		}
	}
}

type intersection struct {
	w int
	h int
}

func intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) intersection {
	x1 := max(ax1, bx1)
	y1 := max(ay1, by1)
	x2 := min(ax2, bx2)
	y2 := min(ay2, by2)

	if x2 <= x1 || y2 <= y1 {
		return intersection{}
	}
	return intersection{w: x2 - x1, h: y2 - y1}
}

func intersects(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) bool {
	isect := intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	return isect.w > 0 && isect.h > 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
