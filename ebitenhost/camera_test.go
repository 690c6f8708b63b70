package ebitenhost

import (
	"testing"

	"github.com/glidecam/glidecam/camera"
)

func TestConstrainScaleLimits(t *testing.T) {
	c := NewCamera(1280, 720)
	if got := c.Constrain(camera.Pose{X: 640, Y: 360, Scale: 100}).Scale; got != 4.0 {
		t.Fatalf("scale clamped to %v, want 4.0", got)
	}
	if got := c.Constrain(camera.Pose{X: 640, Y: 360, Scale: 0.01}).Scale; got != 0.25 {
		t.Fatalf("scale clamped to %v, want 0.25", got)
	}
}

func TestConstrainWorldBounds(t *testing.T) {
	c := NewCamera(1280, 720)
	c.SetWorldBounds(4000, 2000)

	// at scale 1 the half view is 640x360; centers clamp to that margin
	p := c.Constrain(camera.Pose{X: -500, Y: 5000, Scale: 1})
	if p.X != 640 || p.Y != 2000-360 {
		t.Fatalf("constrained center = (%v, %v), want (640, 1640)", p.X, p.Y)
	}

	// world smaller than the view centers on the world
	c.SetWorldBounds(100, 100)
	p = c.Constrain(camera.Pose{X: 0, Y: 0, Scale: 1})
	if p.X != 50 || p.Y != 50 {
		t.Fatalf("small-world center = (%v, %v), want (50, 50)", p.X, p.Y)
	}
}

func TestConstrainUnboundedWorldLeavesPanAlone(t *testing.T) {
	c := NewCamera(1280, 720)
	p := c.Constrain(camera.Pose{X: -1e6, Y: 1e6, Scale: 1})
	if p.X != -1e6 || p.Y != 1e6 {
		t.Fatalf("unbounded world should not clamp pan: %+v", p)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera(1280, 720)
	c.SetPose(camera.Pose{X: 200, Y: 300, Scale: 2})

	wx, wy := c.ScreenToWorld(640, 360)
	if wx != 200 || wy != 300 {
		t.Fatalf("screen center should map to camera center, got (%v, %v)", wx, wy)
	}

	wx, _ = c.ScreenToWorld(640+100, 360)
	if wx != 250 {
		t.Fatalf("100px right at scale 2 is 50 world units, got %v", wx)
	}
}

func TestSetScaleKeepsCenterLegal(t *testing.T) {
	c := NewCamera(1280, 720)
	c.SetWorldBounds(1280, 720)
	c.SetPose(camera.Pose{X: 640, Y: 360, Scale: 1})

	// zooming out over an exactly view-sized world pins the center
	c.SetScale(0.5)
	p := c.Pose()
	if p.X != 640 || p.Y != 360 {
		t.Fatalf("center drifted on zoom out: %+v", p)
	}
	if p.Scale != 0.5 {
		t.Fatalf("scale = %v, want 0.5", p.Scale)
	}
}
