// Package glide animates a host canvas runtime's camera: it intercepts the
// host's zoom and pan inputs, steers a target pose, and re-plays the view
// toward that target each render frame with exponential-decay easing.
package glide

import (
	"fmt"
	"log"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/config"
	"github.com/glidecam/glidecam/host"
	"github.com/glidecam/glidecam/notify"
)

// interceptedOps is every host operation this layer may take over; used for
// conflict detection before anything installs.
var interceptedOps = []host.Op{host.OpWheelScroll, host.OpDragMove, host.OpPan, host.OpAnimatePan}

// Controller is the per-display-context state object: settings snapshot,
// current/target view, interception set, and frame-loop lifecycle. All entry
// points run on the host's single event/render thread; nothing here locks.
type Controller struct {
	host     host.Host
	owner    host.Owner
	notifier notify.Notifier

	view     *camera.ViewState
	settings config.Settings
	manager  *Manager
	ticker   *ticker
	mode     Mode
	handler  modeHandler

	// terminal startup failure; once set, nothing installs until reload
	err error
}

func NewController(h host.Host, owner host.Owner, n notify.Notifier) *Controller {
	return &Controller{
		host:     h,
		owner:    owner,
		notifier: n,
		view:     camera.NewViewState(),
		manager:  NewManager(h, owner),
		ticker:   &ticker{host: h},
		handler:  none{},
	}
}

// Startup runs conflict detection once and, if clear, installs the mode
// derived from s. Terminal failures are posted as sticky notifications and
// leave every host operation unmodified.
func (c *Controller) Startup(s config.Settings) error {
	for _, op := range interceptedOps {
		if c.host.HeldByOther(op, c.owner) {
			c.err = fmt.Errorf("glide: operation %q already intercepted by another system", op)
			c.notifier.Post(notify.Notice{
				Level:  notify.Error,
				Text:   "Smooth camera disabled: a conflicting camera module is active.",
				Sticky: true,
			})
			return c.err
		}
	}
	return c.ApplySettings(s)
}

// ApplySettings adopts a new settings snapshot, re-derives the mode, and
// atomically swaps the interception set. Any in-flight animation is
// cancelled without a visible jump.
func (c *Controller) ApplySettings(s config.Settings) error {
	if c.err != nil {
		return c.err
	}
	c.settings = s

	c.ticker.stop()
	c.ResetView()

	mode := DeriveMode(s.EnableZoom, s.EnablePan)
	handler := handlerFor(mode)
	if err := c.manager.Register(handler.interceptions(c)); err != nil {
		c.err = err
		c.notifier.Post(notify.Notice{
			Level:  notify.Error,
			Text:   "Smooth camera disabled: could not take over the host's camera operations.",
			Sticky: true,
		})
		return err
	}
	c.mode = mode
	c.handler = handler
	return nil
}

// ResetView resynchronizes both poses to the host's authoritative live pose.
// Called at startup and whenever the host signals a fresh display context
// (scene load), and as part of cancelling an animation.
func (c *Controller) ResetView() {
	c.view.SyncFromHost(c.host)
	c.view.AlignTargetToCurrent()
}

// Shutdown stops any running animation and removes every interception,
// restoring unmodified host behavior.
func (c *Controller) Shutdown() {
	c.ticker.stop()
	c.manager.UnregisterAll()
}

// Mode reports the currently installed mode.
func (c *Controller) Mode() Mode { return c.mode }

// Running reports whether the frame loop is currently attached.
func (c *Controller) Running() bool { return c.ticker.running() }

// View exposes the current/target view state, mainly for the host
// application's debug overlays.
func (c *Controller) View() *camera.ViewState { return c.view }

// Err returns the terminal startup error, if any.
func (c *Controller) Err() error { return c.err }

// armTicker starts the frame loop if the target has moved away from the
// current pose. Idempotent while running.
func (c *Controller) armTicker() {
	if c.view.Target == c.view.Current {
		return
	}
	if err := c.ticker.start(c.view, c.handler.frameStep(c)); err != nil {
		log.Printf("glide: attach frame callback: %v", err)
	}
}
