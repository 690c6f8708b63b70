// Package ebitenhost is the canvas-runtime side of the patch layer: an
// ebiten-backed implementation of host.Host. It owns the world camera,
// polls wheel and right-drag input, runs the host's own pose animation,
// and drives attached per-frame callbacks from the game's Update tick.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/host"
)

// defaultZoomStep is the instant zoom applied per wheel click when nothing
// overrides wheel handling.
const defaultZoomStep = 1.1

type Runtime struct {
	cam *Camera
	reg registry

	dragSpeed float64

	// input is suppressed while the application UI captures the cursor
	captured bool

	dragging       bool
	lastMX, lastMY int

	anim *poseAnim
}

func NewRuntime(cam *Camera) *Runtime {
	return &Runtime{cam: cam, dragSpeed: 1}
}

// Camera returns the world camera this runtime renders through.
func (r *Runtime) Camera() *Camera { return r.cam }

// SetInputCaptured suppresses canvas input dispatch, for frames where a
// dialog or other UI owns the cursor.
func (r *Runtime) SetInputCaptured(captured bool) { r.captured = captured }

// SetDragSpeedModifier adjusts the global drag multiplier.
func (r *Runtime) SetDragSpeedModifier(mod float64) {
	if mod > 0 {
		r.dragSpeed = mod
	}
}

func (r *Runtime) LivePose() camera.Pose { return r.cam.Pose() }

func (r *Runtime) ConstrainPose(p camera.Pose) camera.Pose { return r.cam.Constrain(p) }

// Pan is the runtime's adopt-pose entry point; installed wraps run around
// the direct camera update.
func (r *Runtime) Pan(req host.PanRequest) {
	r.reg.panChain(r.applyPan)(req)
}

func (r *Runtime) applyPan(req host.PanRequest) {
	r.cam.SetPose(req.Pose)
}

// SetZoom pushes a scale straight to the camera, bypassing Pan and its wraps.
func (r *Runtime) SetZoom(scale float64) {
	r.cam.SetScale(scale)
}

// AnimatePan starts the runtime's own pose animation; installed wraps may
// rewrite the request (easing injection) before it runs.
func (r *Runtime) AnimatePan(req host.AnimatePanRequest) {
	r.reg.animChain(r.startAnim)(req)
}

func (r *Runtime) DragSpeedModifier() float64 { return r.dragSpeed }

func (r *Runtime) Intercept(owner host.Owner, ic host.Interception) (host.Registration, error) {
	return r.reg.install(owner, ic)
}

func (r *Runtime) HeldByOther(op host.Op, owner host.Owner) bool {
	return r.reg.heldByOther(op, owner)
}

func (r *Runtime) OnFrame(fn func()) (host.FrameHandle, error) {
	return r.reg.attachFrame(fn)
}

// Animating reports whether the runtime's own pose animation is in flight.
func (r *Runtime) Animating() bool { return r.anim != nil }

// Update runs one host tick: input dispatch, the host's own animation, then
// the attached frame callbacks. Call once per ebiten Update with the frame's
// delta time in seconds.
func (r *Runtime) Update(dt float64) {
	if !r.captured {
		r.pollWheel()
		r.pollDrag()
	}
	r.stepAnim(dt)
	r.reg.runFrames()
}

func (r *Runtime) pollWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	if ov := r.reg.override(host.OpWheelScroll); ov != nil {
		ov.ic.OnWheel(host.WheelEvent{DeltaY: wy})
		return
	}
	// unpatched behavior: instant zoom step
	scale := r.cam.Pose().Scale
	if wy > 0 {
		scale *= defaultZoomStep
	} else {
		scale /= defaultZoomStep
	}
	r.cam.SetScale(scale)
}

func (r *Runtime) pollDrag() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		r.dragging = true
		r.lastMX, r.lastMY = ebiten.CursorPosition()
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		r.dragging = false
		return
	}
	if !r.dragging {
		return
	}

	mx, my := ebiten.CursorPosition()
	if mx == r.lastMX && my == r.lastMY {
		return
	}

	// interaction coordinates are in view units, so a screen-pixel drag is
	// scaled by the live zoom before dispatch
	scale := r.cam.Pose().Scale
	in := &host.DragInteraction{
		OriginX: float64(r.lastMX) / scale,
		OriginY: float64(r.lastMY) / scale,
		DestX:   float64(mx) / scale,
		DestY:   float64(my) / scale,
	}
	r.lastMX, r.lastMY = mx, my

	if ov := r.reg.override(host.OpDragMove); ov != nil {
		ov.ic.OnDrag(host.DragEvent{Interaction: in})
		return
	}
	// unpatched behavior: instant pan, content follows the cursor
	p := r.cam.Pose()
	p.X -= (in.DestX - in.OriginX) * r.dragSpeed
	p.Y -= (in.DestY - in.OriginY) * r.dragSpeed
	r.cam.SetPose(p)
}

// poseAnim is the runtime's own animate-from-A-to-B facility. Progress is
// normalized; the easing curve (linear when unset) maps it to interpolation.
type poseAnim struct {
	from, to camera.Pose
	duration float64
	elapsed  float64
	ease     func(pt float64) float64
}

func (r *Runtime) startAnim(req host.AnimatePanRequest) {
	if req.Duration <= 0 {
		r.applyPan(host.PanRequest{Pose: req.To})
		return
	}
	r.anim = &poseAnim{
		from:     r.cam.Pose(),
		to:       r.cam.Constrain(req.To),
		duration: req.Duration,
		ease:     req.Ease,
	}
}

func (r *Runtime) stepAnim(dt float64) {
	a := r.anim
	if a == nil {
		return
	}
	a.elapsed += dt
	pt := a.elapsed / a.duration
	if pt >= 1 {
		r.cam.SetPose(a.to)
		r.anim = nil
		return
	}
	k := pt
	if a.ease != nil {
		k = a.ease(pt)
	}
	r.cam.SetPose(camera.Pose{
		X:     lerp(a.from.X, a.to.X, k),
		Y:     lerp(a.from.Y, a.to.Y, k),
		Scale: lerp(a.from.Scale, a.to.Scale, k),
	})
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
