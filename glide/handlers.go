package glide

import (
	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/ease"
	"github.com/glidecam/glidecam/host"
)

// modeHandler is one interpolation strategy: which host operations it
// intercepts, and the per-frame callback that advances the view while the
// ticker runs.
type modeHandler interface {
	interceptions(c *Controller) []host.Interception
	frameStep(c *Controller) func()
}

func handlerFor(m Mode) modeHandler {
	switch m {
	case ModeZoomOnly:
		return zoomOnly{}
	case ModePanOnly:
		return panOnly{}
	case ModeBoth:
		return both{}
	default:
		return none{}
	}
}

// none installs nothing; the ticker never starts.
type none struct{}

func (none) interceptions(*Controller) []host.Interception { return nil }
func (none) frameStep(*Controller) func()                  { return func() {} }

type zoomOnly struct{}

func (zoomOnly) interceptions(c *Controller) []host.Interception {
	return []host.Interception{
		{Op: host.OpWheelScroll, Policy: host.Override, OnWheel: c.onWheelZoomOnly},
	}
}

func (zoomOnly) frameStep(c *Controller) func() {
	return func() {
		dt := c.view.FrameDelta()
		f := ease.DecayFactor(c.settings.ZoomSpeed, dt)
		next, remaining := ease.StepToward(c.view.Current.Scale, c.view.Target.Scale, f)
		c.view.Current.Scale = next
		c.host.SetZoom(next)
		if remaining == 0 {
			c.ticker.stop()
		}
	}
}

type panOnly struct{}

func (panOnly) interceptions(c *Controller) []host.Interception {
	return []host.Interception{
		{Op: host.OpAnimatePan, Policy: host.Wrap, WrapAnimatePan: c.wrapAnimatePan},
		{Op: host.OpDragMove, Policy: host.Override, OnDrag: c.onDragPanOnly},
	}
}

func (panOnly) frameStep(c *Controller) func() {
	return func() {
		dt := c.view.FrameDelta()
		f := ease.DecayFactor(c.settings.PanSpeed, dt)
		nx, dx := ease.StepToward(c.view.Current.X, c.view.Target.X, f)
		ny, dy := ease.StepToward(c.view.Current.Y, c.view.Target.Y, f)
		// scale is never animated in this mode; it passes through live from
		// the host so external zoom changes keep working mid-pan
		scale := c.host.LivePose().Scale
		c.view.Current = camera.Pose{X: nx, Y: ny, Scale: scale}
		c.host.Pan(host.PanRequest{Pose: c.view.Current, Internal: true})
		if dx == 0 && dy == 0 {
			c.ticker.stop()
		}
	}
}

type both struct{}

func (both) interceptions(c *Controller) []host.Interception {
	return []host.Interception{
		{Op: host.OpPan, Policy: host.Wrap, WrapPan: c.wrapPan},
		{Op: host.OpAnimatePan, Policy: host.Wrap, WrapAnimatePan: c.wrapAnimatePan},
		{Op: host.OpWheelScroll, Policy: host.Override, OnWheel: c.onWheelBoth},
		{Op: host.OpDragMove, Policy: host.Override, OnDrag: c.onDragBoth},
	}
}

func (both) frameStep(c *Controller) func() {
	return func() {
		dt := c.view.FrameDelta()
		fp := ease.DecayFactor(c.settings.PanSpeed, dt)
		fz := ease.DecayFactor(c.settings.ZoomSpeed, dt)
		nx, dx := ease.StepToward(c.view.Current.X, c.view.Target.X, fp)
		ny, dy := ease.StepToward(c.view.Current.Y, c.view.Target.Y, fp)
		ns, ds := ease.StepToward(c.view.Current.Scale, c.view.Target.Scale, fz)
		c.host.Pan(host.PanRequest{Pose: camera.Pose{X: nx, Y: ny, Scale: ns}, Internal: true})
		// the host may clamp what it adopted; re-read rather than assume
		c.view.SyncFromHost(c.host)
		if dx == 0 && dy == 0 && ds == 0 {
			c.ticker.stop()
		}
	}
}

// zoomedScale applies one wheel click to scale. The host's wheel convention
// holds: a non-negative delta zooms in (multiplies), negative divides.
func (c *Controller) zoomedScale(scale, delta float64) float64 {
	if delta >= 0 {
		return scale * c.settings.ZoomStep
	}
	return scale / c.settings.ZoomStep
}

func (c *Controller) onWheelZoomOnly(ev host.WheelEvent) {
	c.view.SyncFromHost(c.host)
	t := c.view.Target
	t.Scale = c.zoomedScale(t.Scale, ev.DeltaY)
	c.view.Target = c.host.ConstrainPose(t)
	c.armTicker()
}

func (c *Controller) onWheelBoth(ev host.WheelEvent) {
	c.view.SyncFromHost(c.host)
	cur := c.view.Current
	t := camera.Pose{X: cur.X, Y: cur.Y, Scale: c.zoomedScale(cur.Scale, ev.DeltaY)}
	c.view.Target = c.host.ConstrainPose(t)
	c.armTicker()
}

func (c *Controller) onDragPanOnly(ev host.DragEvent) {
	in := ev.Interaction
	if in == nil {
		return
	}
	c.view.SyncFromHost(c.host)
	mod := c.host.DragSpeedModifier()
	cur := c.view.Current
	t := camera.Pose{
		X: cur.X - (in.DestX-in.OriginX)*mod,
		Y: cur.Y - (in.DestY-in.OriginY)*mod,
		// pin to the live scale: zoom is not animated in this mode
		Scale: cur.Scale,
	}
	c.view.Target = c.host.ConstrainPose(t)
	c.armTicker()
}

func (c *Controller) onDragBoth(ev host.DragEvent) {
	in := ev.Interaction
	if in == nil {
		return
	}
	c.view.SyncFromHost(c.host)
	mod := c.host.DragSpeedModifier()
	cur := c.view.Current
	t := camera.Pose{
		X: cur.X - (in.DestX-in.OriginX)*mod,
		Y: cur.Y - (in.DestY-in.OriginY)*mod,
		// scale is actively animating here, so pin to the target, not the
		// current, scale
		Scale: c.view.Target.Scale,
	}
	c.view.Target = c.host.ConstrainPose(t)
	c.armTicker()
}

// wrapPan distinguishes the animation pushing its own interpolated frame
// from someone else asking the view to jump. A foreign pan cancels the
// ticker and re-aligns target to current so the loop cannot fight it.
func (c *Controller) wrapPan(next func(host.PanRequest), req host.PanRequest) {
	if req.Internal {
		next(req)
		return
	}
	c.ticker.stop()
	next(req)
	c.view.SyncFromHost(c.host)
	c.view.AlignTargetToCurrent()
}

// wrapAnimatePan injects the exponential easing curve into the host's own
// animate-pose facility so delegated transitions share the decay feel.
func (c *Controller) wrapAnimatePan(next func(host.AnimatePanRequest), req host.AnimatePanRequest) {
	req.Ease = ease.PanCurve(c.settings.PanSpeed)
	next(req)
}
