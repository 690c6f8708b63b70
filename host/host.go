// Package host defines the contract between the animation core and the
// canvas runtime it patches: the view primitives the core consumes and the
// interception surface it installs its behavior through.
package host

import "github.com/glidecam/glidecam/camera"

// Op names an interceptable host operation.
type Op string

const (
	// OpWheelScroll is the host's wheel-scroll handler (zoom input).
	OpWheelScroll Op = "wheelScroll"
	// OpDragMove is the host's right-drag-move handler (pan input).
	OpDragMove Op = "dragRightMove"
	// OpPan is the host's normal adopt-pose entry point.
	OpPan Op = "pan"
	// OpAnimatePan is the host's own animate-pose-over-time facility.
	OpAnimatePan Op = "animatePan"
)

// Policy selects how an interception relates to the host's own behavior.
type Policy int

const (
	// Override replaces the host operation entirely while installed.
	Override Policy = iota
	// Wrap runs around the host operation with call-through access to it.
	Wrap
)

func (p Policy) String() string {
	if p == Wrap {
		return "wrap"
	}
	return "override"
}

// WheelEvent is a wheel-scroll input. The host's sign convention holds:
// a non-negative delta means zoom in.
type WheelEvent struct {
	DeltaY float64
}

// DragInteraction carries the coordinates of a right-drag move, in view
// units (the host converts from screen pixels before dispatch).
type DragInteraction struct {
	OriginX, OriginY float64
	DestX, DestY     float64
}

// DragEvent is a right-drag-move input. Interaction is nil when the host
// delivered a malformed event; handlers skip those silently.
type DragEvent struct {
	Interaction *DragInteraction
}

// PanRequest asks the host to adopt a pose. Internal marks requests
// originated by the animation loop itself, so pan wrappers can tell an
// interpolated frame apart from a foreign jump.
type PanRequest struct {
	Pose     camera.Pose
	Internal bool
}

// AnimatePanRequest asks the host to animate from its live pose to To over
// Duration seconds. Ease maps normalized progress 0..1 to eased progress
// 0..1; nil means the host default.
type AnimatePanRequest struct {
	To       camera.Pose
	Duration float64
	Ease     func(pt float64) float64
}

// Interception describes one replacement or wrap of a host operation.
// Exactly one function field is set, matching Op and Policy:
//
//	OpWheelScroll / Override -> OnWheel
//	OpDragMove    / Override -> OnDrag
//	OpPan         / Wrap     -> WrapPan
//	OpAnimatePan  / Wrap     -> WrapAnimatePan
type Interception struct {
	Op     Op
	Policy Policy

	OnWheel        func(WheelEvent)
	OnDrag         func(DragEvent)
	WrapPan        func(next func(PanRequest), req PanRequest)
	WrapAnimatePan func(next func(AnimatePanRequest), req AnimatePanRequest)
}

// Owner identifies who installed an interception, so a runtime can detect a
// conflicting companion system holding the same operations.
type Owner string

// Registration is an installed interception; Remove uninstalls it.
type Registration interface {
	Op() Op
	Remove() error
}

// FrameHandle is an attached per-frame callback; Detach removes it from the
// host's render tick.
type FrameHandle interface {
	Detach() error
}

// Host is the canvas runtime surface the animation core operates on.
type Host interface {
	// LivePose reads the host's authoritative rendered pose.
	LivePose() camera.Pose
	// ConstrainPose clamps a requested pose to one the host will accept.
	ConstrainPose(p camera.Pose) camera.Pose
	// Pan is the normal view-change entry point, subject to OpPan wraps.
	Pan(req PanRequest)
	// SetZoom pushes a scale directly to the host's zoom state, bypassing Pan.
	SetZoom(scale float64)
	// AnimatePan runs the host's animate-pose facility, subject to
	// OpAnimatePan wraps.
	AnimatePan(req AnimatePanRequest)
	// DragSpeedModifier is the host-global drag multiplier, read fresh on
	// every drag event rather than cached.
	DragSpeedModifier() float64

	// Intercept installs an interception on behalf of owner.
	Intercept(owner Owner, ic Interception) (Registration, error)
	// HeldByOther reports whether any owner other than the given one
	// currently holds an interception on op.
	HeldByOther(op Op, owner Owner) bool

	// OnFrame attaches fn to the host's per-frame render tick.
	OnFrame(fn func()) (FrameHandle, error)
}
