package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/glidecam/glidecam/camera"
)

// Camera renders the world centered on a given world coordinate and supports
// zoom. X/Y of its pose are the world-space center of the view.
type Camera struct {
	pose camera.Pose

	screenW int
	screenH int

	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64

	minScale float64
	maxScale float64
}

// NewCamera creates a camera with the given logical screen size, centered on
// the screen-sized region at scale 1.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		pose:     camera.Pose{X: float64(screenW) / 2.0, Y: float64(screenH) / 2.0, Scale: 1},
		screenW:  screenW,
		screenH:  screenH,
		minScale: 0.25,
		maxScale: 4.0,
	}
}

// Pose returns the camera's live pose.
func (c *Camera) Pose() camera.Pose {
	return c.pose
}

// SetPose adopts a pose, constrained to scale limits and world bounds.
func (c *Camera) SetPose(p camera.Pose) {
	c.pose = c.Constrain(p)
}

// SetScale adopts just a zoom scale, keeping the pan center (re-constrained,
// since the legal center range depends on scale).
func (c *Camera) SetScale(scale float64) {
	p := c.pose
	p.Scale = scale
	c.pose = c.Constrain(p)
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// SetScaleLimits sets the allowed zoom range.
func (c *Camera) SetScaleLimits(min, max float64) {
	if min <= 0 || max < min {
		return
	}
	c.minScale = min
	c.maxScale = max
}

// Constrain returns the nearest legal pose: scale clamped to the zoom range,
// center clamped so the view stays inside the world bounds. A world smaller
// than the view centers on the world.
func (c *Camera) Constrain(p camera.Pose) camera.Pose {
	p.Scale = clamp(p.Scale, c.minScale, c.maxScale)

	viewW := float64(c.screenW) / p.Scale
	viewH := float64(c.screenH) / p.Scale
	halfW := viewW / 2.0
	halfH := viewH / 2.0
	if c.worldW > 0 {
		minX := halfW
		maxX := c.worldW - halfW
		if maxX < minX {
			p.X = c.worldW / 2.0
		} else {
			p.X = clamp(p.X, minX, maxX)
		}
	}
	if c.worldH > 0 {
		minY := halfH
		maxY := c.worldH - halfH
		if maxY < minY {
			p.Y = c.worldH / 2.0
		} else {
			p.Y = clamp(p.Y, minY, maxY)
		}
	}
	return p
}

// GeoM returns the world-to-screen transform for the current pose.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.pose.X, -c.pose.Y)
	g.Scale(c.pose.Scale, c.pose.Scale)
	g.Translate(float64(c.screenW)/2.0, float64(c.screenH)/2.0)
	return g
}

// ScreenToWorld maps a screen pixel to world coordinates under the current
// pose.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.screenW)/2.0)/c.pose.Scale + c.pose.X
	wy := (float64(sy)-float64(c.screenH)/2.0)/c.pose.Scale + c.pose.Y
	return wx, wy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
