package main

import (
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/ebitenhost"
	"github.com/glidecam/glidecam/host"
)

// Waypoint is one stop on a scripted camera tour.
type Waypoint struct {
	Pose     camera.Pose
	Duration float64
}

// Tour plays a list of waypoints through the host's animate-pose entry
// point, one at a time, waiting for each animation to finish.
type Tour struct {
	points []Waypoint
	next   int
	active bool
}

// LoadTour compiles and runs a tengo script that must export a `waypoints`
// array of {x, y, scale, duration} maps.
func LoadTour(path string) (*Tour, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	raw := compiled.Get("waypoints").Array()
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s exports no waypoints", path)
	}

	tour := &Tour{}
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			log.Printf("tour: waypoint %d is not a map, skipped", i)
			continue
		}
		wp := Waypoint{
			Pose: camera.Pose{
				X:     scriptFloat(m["x"], 0),
				Y:     scriptFloat(m["y"], 0),
				Scale: scriptFloat(m["scale"], 1),
			},
			Duration: scriptFloat(m["duration"], 2),
		}
		tour.points = append(tour.points, wp)
	}
	if len(tour.points) == 0 {
		return nil, fmt.Errorf("%s has no usable waypoints", path)
	}
	return tour, nil
}

func scriptFloat(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return fallback
	}
}

// Start rewinds the tour and begins playback on the next Step.
func (t *Tour) Start() {
	t.next = 0
	t.active = true
}

// Step feeds the next waypoint to the host once its previous animation has
// finished. The animate-pan wrap installed by the smoothing layer shapes
// each leg with the exponential easing curve.
func (t *Tour) Step(rt *ebitenhost.Runtime) {
	if !t.active || rt.Animating() {
		return
	}
	if t.next >= len(t.points) {
		t.active = false
		return
	}
	wp := t.points[t.next]
	t.next++
	rt.AnimatePan(host.AnimatePanRequest{To: wp.Pose, Duration: wp.Duration})
}
