package glide

import (
	"log"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/host"
)

// ticker owns the per-frame callback lifecycle: IDLE (no callback attached)
// or RUNNING (exactly one attached to the host's render tick). Start and Stop
// are both idempotent.
type ticker struct {
	host   host.Host
	handle host.FrameHandle
}

func (t *ticker) running() bool {
	return t.handle != nil
}

// start attaches step to the host render tick. A no-op while running. The
// clock baseline resets so the first frame step sees near-zero elapsed time
// instead of the whole idle gap.
func (t *ticker) start(view *camera.ViewState, step func()) error {
	if t.handle != nil {
		return nil
	}
	view.ResetClock()
	h, err := t.host.OnFrame(step)
	if err != nil {
		return err
	}
	t.handle = h
	return nil
}

// stop detaches the frame callback. A no-op while idle. Detach failures are
// logged, not surfaced; the handle is dropped either way.
func (t *ticker) stop() {
	if t.handle == nil {
		return
	}
	if err := t.handle.Detach(); err != nil {
		log.Printf("glide: detach frame callback: %v", err)
	}
	t.handle = nil
}
