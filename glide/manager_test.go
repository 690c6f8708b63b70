package glide

import (
	"maps"
	"testing"

	"github.com/glidecam/glidecam/config"
	"github.com/glidecam/glidecam/host"
	"github.com/glidecam/glidecam/notify"
)

func counts(h *fakeHost) map[host.Op]int {
	return map[host.Op]int{
		host.OpWheelScroll: h.installed(host.OpWheelScroll),
		host.OpDragMove:    h.installed(host.OpDragMove),
		host.OpPan:         h.installed(host.OpPan),
		host.OpAnimatePan:  h.installed(host.OpAnimatePan),
	}
}

func TestModeSwitchReRegistration(t *testing.T) {
	h := newFakeHost()
	c, _, _ := newTestController(t, h, config.Settings{EnableZoom: true, ZoomSpeed: 5, ZoomStep: 1.12})

	want := map[host.Op]int{host.OpWheelScroll: 1, host.OpDragMove: 0, host.OpPan: 0, host.OpAnimatePan: 0}
	if got := counts(h); !maps.Equal(got, want) {
		t.Fatalf("zoom-only set = %v, want %v", got, want)
	}

	panOnly := config.Settings{EnablePan: true, PanSpeed: 5}
	if err := c.ApplySettings(panOnly); err != nil {
		t.Fatal(err)
	}
	want = map[host.Op]int{host.OpWheelScroll: 0, host.OpDragMove: 1, host.OpPan: 0, host.OpAnimatePan: 1}
	if got := counts(h); !maps.Equal(got, want) {
		t.Fatalf("pan-only set = %v, want %v", got, want)
	}

	// toggling to the same mode twice must not accumulate duplicates
	if err := c.ApplySettings(panOnly); err != nil {
		t.Fatal(err)
	}
	if got := counts(h); !maps.Equal(got, want) {
		t.Fatalf("repeat registration duplicated interceptions: %v", got)
	}

	if err := c.ApplySettings(config.Settings{
		EnableZoom: true, ZoomSpeed: 5, ZoomStep: 1.12,
		EnablePan: true, PanSpeed: 5,
	}); err != nil {
		t.Fatal(err)
	}
	want = map[host.Op]int{host.OpWheelScroll: 1, host.OpDragMove: 1, host.OpPan: 1, host.OpAnimatePan: 1}
	if got := counts(h); !maps.Equal(got, want) {
		t.Fatalf("both set = %v, want %v", got, want)
	}

	if err := c.ApplySettings(config.Settings{}); err != nil {
		t.Fatal(err)
	}
	want = map[host.Op]int{host.OpWheelScroll: 0, host.OpDragMove: 0, host.OpPan: 0, host.OpAnimatePan: 0}
	if got := counts(h); !maps.Equal(got, want) {
		t.Fatalf("none set = %v, want %v", got, want)
	}
}

func TestRegistrationFailureRollsBack(t *testing.T) {
	h := newFakeHost()
	// both mode installs the drag override last of the input ops; failing it
	// must roll back everything installed before it
	h.failOps = map[host.Op]bool{host.OpDragMove: true}

	center := notify.NewCenter()
	c := NewController(h, "glidecam", center)
	err := c.Startup(config.Settings{
		EnableZoom: true, ZoomSpeed: 5, ZoomStep: 1.12,
		EnablePan: true, PanSpeed: 5,
	})
	if err == nil {
		t.Fatal("Startup should surface the registration failure")
	}

	for op, n := range counts(h) {
		if n != 0 {
			t.Fatalf("%s interception left installed after rollback", op)
		}
	}
	if c.Mode() != ModeNone {
		t.Fatalf("no handler may become active after a failed install, mode = %v", c.Mode())
	}

	sticky := 0
	for _, n := range center.Notices() {
		if n.Sticky && n.Level == notify.Error {
			sticky++
		}
	}
	if sticky != 1 {
		t.Fatalf("want exactly one persistent error notification, got %d", sticky)
	}

	// terminal: later settings changes must not retry
	if err := c.ApplySettings(config.Settings{EnablePan: true, PanSpeed: 5}); err == nil {
		t.Fatal("ApplySettings after terminal failure should keep failing")
	}
	if h.installed(host.OpDragMove)+h.installed(host.OpAnimatePan) != 0 {
		t.Fatal("terminal failure must not be retried")
	}
}

func TestConflictDetection(t *testing.T) {
	h := newFakeHost()
	// a rival camera system already wraps the pan entry point
	if _, err := h.Intercept("rival", host.Interception{
		Op: host.OpPan, Policy: host.Wrap,
		WrapPan: func(next func(host.PanRequest), req host.PanRequest) { next(req) },
	}); err != nil {
		t.Fatal(err)
	}

	center := notify.NewCenter()
	c := NewController(h, "glidecam", center)
	if err := c.Startup(config.Settings{EnableZoom: true, ZoomSpeed: 5, ZoomStep: 1.12}); err == nil {
		t.Fatal("Startup should report the conflict")
	}

	if h.installed(host.OpWheelScroll) != 0 {
		t.Fatal("conflict must prevent any installation")
	}
	notices := center.Notices()
	if len(notices) != 1 || !notices[0].Sticky || notices[0].Level != notify.Error {
		t.Fatalf("want one persistent error notice, got %+v", notices)
	}
}

func TestShutdownRestoresHost(t *testing.T) {
	h := newFakeHost()
	c, _, _ := newTestController(t, h, config.Settings{
		EnableZoom: true, ZoomSpeed: 5, ZoomStep: 1.12,
		EnablePan: true, PanSpeed: 5,
	})
	h.wheel(1)

	c.Shutdown()
	if h.attachedFrames() != 0 {
		t.Fatal("Shutdown left a frame callback attached")
	}
	for op, n := range counts(h) {
		if n != 0 {
			t.Fatalf("Shutdown left %s interception installed", op)
		}
	}
}
