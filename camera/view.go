// Package camera holds the view pose model shared by the animation core and
// the host runtime: a pan offset plus zoom scale, and the current/target pair
// the interpolation loop converges.
package camera

import "time"

// Pose is a camera view: pan offset and zoom factor.
type Pose struct {
	X     float64
	Y     float64
	Scale float64
}

// HostView is the minimal read surface the view state needs from the host
// runtime to stay honest about where the camera really is.
type HostView interface {
	LivePose() Pose
}

// ViewState tracks the pose actually pushed to the display each frame
// (Current) and the pose input events are steering toward (Target), plus the
// wall clock used to derive per-frame delta time.
type ViewState struct {
	Current Pose
	Target  Pose

	// now is swappable so tests can drive the clock deterministically.
	now      func() time.Time
	lastTick time.Time
}

// NewViewState returns a view state with both poses at the neutral default.
func NewViewState() *ViewState {
	return &ViewState{
		Current: Pose{Scale: 1},
		Target:  Pose{Scale: 1},
		now:     time.Now,
	}
}

// SetClock replaces the wall clock. Passing nil restores time.Now.
func (v *ViewState) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	v.now = now
}

// FrameDelta returns the seconds elapsed since the previous call and advances
// the stored stamp. The first call after ResetClock, and any call where the
// clock appears to have gone backward, returns 0. Call exactly once per frame
// step, before computing that frame's interpolation factor.
func (v *ViewState) FrameDelta() float64 {
	t := v.now()
	defer func() { v.lastTick = t }()
	if v.lastTick.IsZero() || t.Before(v.lastTick) {
		return 0
	}
	return t.Sub(v.lastTick).Seconds()
}

// ResetClock clears the delta baseline so the next FrameDelta reports 0.
// Called when the ticker arms so the first animated frame sees near-zero
// elapsed time instead of the full idle gap.
func (v *ViewState) ResetClock() {
	v.lastTick = time.Time{}
}

// SyncFromHost overwrites Current with the host's authoritative live pose.
// The host may clamp or constrain values this state never saw, so any
// decision based on "where are we really" re-reads before acting.
func (v *ViewState) SyncFromHost(h HostView) {
	v.Current = h.LivePose()
}

// AlignTargetToCurrent cancels any in-flight convergence without a visible
// jump by declaring the current pose to be the destination.
func (v *ViewState) AlignTargetToCurrent() {
	v.Target = v.Current
}
