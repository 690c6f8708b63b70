package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/glidecam/glidecam/host"
)

// registry tracks installed interceptions and attached frame callbacks. It
// is plain Go with no ebiten dependency so the bookkeeping stays testable
// without a display.
type registry struct {
	entries []*regEntry
	frames  []*frameEntry
}

type regEntry struct {
	owner   host.Owner
	ic      host.Interception
	removed bool
}

func (e *regEntry) Op() host.Op { return e.ic.Op }

func (e *regEntry) Remove() error {
	if e.removed {
		return errors.New("ebitenhost: interception already removed")
	}
	e.removed = true
	return nil
}

// install validates that the descriptor's op, policy, and function field
// agree, and that no other override already claims an override-only op.
func (r *registry) install(owner host.Owner, ic host.Interception) (host.Registration, error) {
	switch ic.Op {
	case host.OpWheelScroll:
		if ic.Policy != host.Override || ic.OnWheel == nil {
			return nil, fmt.Errorf("ebitenhost: %s requires an override with OnWheel", ic.Op)
		}
		if r.override(ic.Op) != nil {
			return nil, fmt.Errorf("ebitenhost: %s already overridden", ic.Op)
		}
	case host.OpDragMove:
		if ic.Policy != host.Override || ic.OnDrag == nil {
			return nil, fmt.Errorf("ebitenhost: %s requires an override with OnDrag", ic.Op)
		}
		if r.override(ic.Op) != nil {
			return nil, fmt.Errorf("ebitenhost: %s already overridden", ic.Op)
		}
	case host.OpPan:
		if ic.Policy != host.Wrap || ic.WrapPan == nil {
			return nil, fmt.Errorf("ebitenhost: %s requires a wrap with WrapPan", ic.Op)
		}
	case host.OpAnimatePan:
		if ic.Policy != host.Wrap || ic.WrapAnimatePan == nil {
			return nil, fmt.Errorf("ebitenhost: %s requires a wrap with WrapAnimatePan", ic.Op)
		}
	default:
		return nil, fmt.Errorf("ebitenhost: unknown operation %q", ic.Op)
	}

	e := &regEntry{owner: owner, ic: ic}
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *registry) heldByOther(op host.Op, owner host.Owner) bool {
	for _, e := range r.entries {
		if !e.removed && e.ic.Op == op && e.owner != owner {
			return true
		}
	}
	return false
}

// override returns the live override entry for op, or nil.
func (r *registry) override(op host.Op) *regEntry {
	for _, e := range r.entries {
		if !e.removed && e.ic.Op == op && e.ic.Policy == host.Override {
			return e
		}
	}
	return nil
}

// panChain composes the installed pan wraps, innermost-first, around final.
func (r *registry) panChain(final func(host.PanRequest)) func(host.PanRequest) {
	next := final
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.removed || e.ic.Op != host.OpPan {
			continue
		}
		inner, wrap := next, e.ic.WrapPan
		next = func(req host.PanRequest) { wrap(inner, req) }
	}
	return next
}

// animChain composes the installed animate-pan wraps around final.
func (r *registry) animChain(final func(host.AnimatePanRequest)) func(host.AnimatePanRequest) {
	next := final
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.removed || e.ic.Op != host.OpAnimatePan {
			continue
		}
		inner, wrap := next, e.ic.WrapAnimatePan
		next = func(req host.AnimatePanRequest) { wrap(inner, req) }
	}
	return next
}

type frameEntry struct {
	fn       func()
	detached bool
}

func (f *frameEntry) Detach() error {
	if f.detached {
		return errors.New("ebitenhost: frame callback already detached")
	}
	f.detached = true
	return nil
}

func (r *registry) attachFrame(fn func()) (host.FrameHandle, error) {
	if fn == nil {
		return nil, errors.New("ebitenhost: nil frame callback")
	}
	f := &frameEntry{fn: fn}
	r.frames = append(r.frames, f)
	return f, nil
}

// runFrames fires the attached callbacks for one render tick and prunes
// detached entries. A callback detaching itself mid-tick is honored.
func (r *registry) runFrames() {
	active := append([]*frameEntry(nil), r.frames...)
	for _, f := range active {
		if !f.detached {
			f.fn()
		}
	}
	kept := r.frames[:0]
	for _, f := range r.frames {
		if !f.detached {
			kept = append(kept, f)
		}
	}
	r.frames = kept
}
