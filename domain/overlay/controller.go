package overlay

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
)

// Controller owns the chakra overlay's placement, visibility and interaction
// mode. It is driven synchronously from UI event handlers.
type Controller struct {
	placement  Placement
	visible    bool
	mode       Mode
	size       geometry.Size
	grabOffset geometry.Point
	pending    geometry.Point
	hasPending bool
	autoShow   bool
	logger     *slog.Logger
	listeners  []Listener
}

// New constructs a hidden controller. Size and auto-show come from cfg when present.
func New(logger *slog.Logger, cfg *config.Config) *Controller {
	c := &Controller{logger: logger, autoShow: true}
	if cfg != nil {
		c.size = geometry.Size{Width: float64(cfg.ChakraSize), Height: float64(cfg.ChakraSize)}
		c.autoShow = cfg.AutoShow
	}
	return c
}

// AddListener registers l for all subsequent changes.
func (c *Controller) AddListener(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// SetSize records the overlay's rendered size used for centering and hit testing.
func (c *Controller) SetSize(s geometry.Size) {
	if s.Width <= 0 || s.Height <= 0 || s == c.size {
		return
	}
	c.size = s
	c.emit()
}

// SetAutoShow controls whether a new centroid makes a hidden overlay visible.
func (c *Controller) SetAutoShow(b bool) { c.autoShow = b }

// SetVisible shows or hides the overlay. Hiding aborts any gesture; showing
// applies a placement still pending from a centroid.
func (c *Controller) SetVisible(v bool) {
	if v == c.visible {
		return
	}
	c.visible = v
	if !v {
		c.mode = ModeIdle
	} else {
		c.applyPending()
	}
	c.emit()
}

// ToggleVisible flips visibility.
func (c *Controller) ToggleVisible() { c.SetVisible(!c.visible) }

// Visible reports whether the overlay is shown.
func (c *Controller) Visible() bool { return c.visible }

// OnCentroid centers the overlay on a newly computed centroid. The placement
// is applied once: immediately when visible, otherwise the next time the
// overlay is shown.
func (c *Controller) OnCentroid(centroid geometry.Point) {
	if !centroid.IsFinite() {
		return
	}
	c.pending = centroid
	c.hasPending = true
	if c.autoShow {
		c.visible = true
	}
	if c.visible {
		c.applyPending()
	}
	c.emit()
}

// ClearCentroid drops a placement that has not been applied yet.
func (c *Controller) ClearCentroid() { c.hasPending = false }

func (c *Controller) applyPending() {
	if !c.hasPending {
		return
	}
	c.hasPending = false
	c.placement.Position = c.pending.Sub(c.size.Half())
	if c.logger != nil {
		c.logger.Info("overlay centered", "x", c.placement.Position.X, "y", c.placement.Position.Y)
	}
}

// SetRotationInput assigns a rotation typed by the user. The leading integer
// is used ("12.7" -> 12), anything unparsable becomes 0 and the result is
// clamped to [0,360]. It returns the applied rotation.
func (c *Controller) SetRotationInput(raw string) int {
	return c.SetRotation(parseDegrees(raw))
}

// SetRotation assigns a clamped rotation and returns it.
func (c *Controller) SetRotation(deg int) int {
	deg = geometry.ClampDegrees(deg)
	if deg != c.placement.RotationDegrees {
		c.placement.RotationDegrees = deg
		c.emit()
	}
	return deg
}

// HitTest reports whether p lies on the visible overlay.
func (c *Controller) HitTest(p geometry.Point) bool {
	return c.visible && geometry.RectAt(c.placement.Position, c.size).Contains(p)
}

// PointerDown starts a gesture. With the modifier held the overlay rotates to
// follow the pointer; otherwise it is dragged, keeping the grab point under
// the pointer. Entering one mode always leaves the other.
func (c *Controller) PointerDown(p geometry.Point, modifier bool) {
	if !c.visible {
		return
	}
	prev := c.mode
	if modifier {
		c.mode = ModeRotating
	} else {
		c.mode = ModeDragging
		c.grabOffset = p.Sub(c.placement.Position)
	}
	if c.logger != nil && prev != c.mode {
		c.logger.Debug("overlay gesture", "from", prev.String(), "to", c.mode.String())
	}
	c.emit()
}

// PointerMove applies the active gesture. It returns false when idle.
func (c *Controller) PointerMove(p geometry.Point) bool {
	switch c.mode {
	case ModeRotating:
		deg := geometry.AngleDegrees(c.State().Center(), p)
		if deg != c.placement.RotationDegrees {
			c.placement.RotationDegrees = deg
			c.emit()
		}
		return true
	case ModeDragging:
		pos := p.Sub(c.grabOffset)
		if pos != c.placement.Position {
			c.placement.Position = pos
			c.emit()
		}
		return true
	default:
		return false
	}
}

// PointerUp ends any gesture.
func (c *Controller) PointerUp() { c.endGesture() }

// PointerLeave ends any gesture when the pointer leaves the surface.
func (c *Controller) PointerLeave() { c.endGesture() }

func (c *Controller) endGesture() {
	if c.mode == ModeIdle {
		return
	}
	c.mode = ModeIdle
	c.emit()
}

// Placement returns the current position and rotation.
func (c *Controller) Placement() Placement { return c.placement }

// Mode returns the active interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	return State{Placement: c.placement, Visible: c.visible, Mode: c.mode, Size: c.size}
}

func (c *Controller) emit() {
	if len(c.listeners) == 0 {
		return
	}
	st := c.State()
	for _, l := range c.listeners {
		l(st)
	}
}

// parseDegrees reads an optional sign and leading digits; anything else yields 0.
func parseDegrees(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of int range; only the sign matters once clamped
		if s[0] == '-' {
			return -1
		}
		return 361
	}
	return v
}

// Ensure contract satisfaction
var _ Contract = (*Controller)(nil)
