package glide

import (
	"errors"
	"fmt"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/host"
)

// fakeHost is an in-memory host runtime: it keeps a live pose, dispatches
// input events through installed interceptions the way a real runtime would,
// and runs attached frame callbacks on demand.
type fakeHost struct {
	pose      camera.Pose
	dragSpeed float64

	// constrain defaults to identity when nil
	constrain func(camera.Pose) camera.Pose

	regs   []*fakeReg
	frames []*fakeFrame

	// ops whose Intercept call should fail
	failOps map[host.Op]bool

	panLog  []host.PanRequest
	zoomLog []float64
	animLog []host.AnimatePanRequest
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		pose:      camera.Pose{Scale: 1},
		dragSpeed: 1,
	}
}

type fakeReg struct {
	h       *fakeHost
	owner   host.Owner
	ic      host.Interception
	removed bool
}

func (r *fakeReg) Op() host.Op { return r.ic.Op }

func (r *fakeReg) Remove() error {
	if r.removed {
		return errors.New("already removed")
	}
	r.removed = true
	return nil
}

type fakeFrame struct {
	h        *fakeHost
	fn       func()
	detached bool
}

func (f *fakeFrame) Detach() error {
	if f.detached {
		return errors.New("already detached")
	}
	f.detached = true
	return nil
}

func (h *fakeHost) LivePose() camera.Pose { return h.pose }

func (h *fakeHost) ConstrainPose(p camera.Pose) camera.Pose {
	if h.constrain != nil {
		return h.constrain(p)
	}
	return p
}

func (h *fakeHost) SetZoom(scale float64) {
	h.pose.Scale = scale
	h.zoomLog = append(h.zoomLog, scale)
}

func (h *fakeHost) Pan(req host.PanRequest) {
	next := func(r host.PanRequest) {
		h.pose = h.ConstrainPose(r.Pose)
		h.panLog = append(h.panLog, r)
	}
	for i := len(h.regs) - 1; i >= 0; i-- {
		r := h.regs[i]
		if r.removed || r.ic.Op != host.OpPan || r.ic.WrapPan == nil {
			continue
		}
		inner, wrap := next, r.ic.WrapPan
		next = func(req host.PanRequest) { wrap(inner, req) }
	}
	next(req)
}

func (h *fakeHost) AnimatePan(req host.AnimatePanRequest) {
	next := func(r host.AnimatePanRequest) {
		h.pose = h.ConstrainPose(r.To)
		h.animLog = append(h.animLog, r)
	}
	for i := len(h.regs) - 1; i >= 0; i-- {
		r := h.regs[i]
		if r.removed || r.ic.Op != host.OpAnimatePan || r.ic.WrapAnimatePan == nil {
			continue
		}
		inner, wrap := next, r.ic.WrapAnimatePan
		next = func(req host.AnimatePanRequest) { wrap(inner, req) }
	}
	next(req)
}

func (h *fakeHost) DragSpeedModifier() float64 { return h.dragSpeed }

func (h *fakeHost) Intercept(owner host.Owner, ic host.Interception) (host.Registration, error) {
	if h.failOps[ic.Op] {
		return nil, fmt.Errorf("host rejected %s", ic.Op)
	}
	r := &fakeReg{h: h, owner: owner, ic: ic}
	h.regs = append(h.regs, r)
	return r, nil
}

func (h *fakeHost) HeldByOther(op host.Op, owner host.Owner) bool {
	for _, r := range h.regs {
		if !r.removed && r.ic.Op == op && r.owner != owner {
			return true
		}
	}
	return false
}

func (h *fakeHost) OnFrame(fn func()) (host.FrameHandle, error) {
	f := &fakeFrame{h: h, fn: fn}
	h.frames = append(h.frames, f)
	return f, nil
}

// step runs one render tick: every attached frame callback fires once.
func (h *fakeHost) step() {
	frames := append([]*fakeFrame(nil), h.frames...)
	for _, f := range frames {
		if !f.detached {
			f.fn()
		}
	}
}

func (h *fakeHost) attachedFrames() int {
	n := 0
	for _, f := range h.frames {
		if !f.detached {
			n++
		}
	}
	return n
}

// installed returns the live interceptions per op.
func (h *fakeHost) installed(op host.Op) int {
	n := 0
	for _, r := range h.regs {
		if !r.removed && r.ic.Op == op {
			n++
		}
	}
	return n
}

// wheel dispatches a wheel-scroll through the installed override, falling
// back to nothing like an unpatched host with no default zoom in tests.
func (h *fakeHost) wheel(delta float64) bool {
	for _, r := range h.regs {
		if !r.removed && r.ic.Op == host.OpWheelScroll && r.ic.OnWheel != nil {
			r.ic.OnWheel(host.WheelEvent{DeltaY: delta})
			return true
		}
	}
	return false
}

func (h *fakeHost) drag(ev host.DragEvent) bool {
	for _, r := range h.regs {
		if !r.removed && r.ic.Op == host.OpDragMove && r.ic.OnDrag != nil {
			r.ic.OnDrag(ev)
			return true
		}
	}
	return false
}
