package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/glidecam/glidecam/camera"
	"github.com/glidecam/glidecam/ebitenhost"
)

// World dimensions in pixels; the camera clamps to these.
const (
	worldWidth  = 4000.0
	worldHeight = 2400.0

	ballCount  = 48
	ballRadius = 18.0
	gridStep   = 200
)

func homePose() camera.Pose {
	return camera.Pose{X: worldWidth / 2, Y: worldHeight / 2, Scale: 1}
}

// Scene is the demo's world content: a Chipmunk space of bouncing balls
// inside the world bounds, so pan and zoom have something to move over.
type Scene struct {
	space *cp.Space
	balls []*cp.Body
}

func NewScene() *Scene {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: 600})

	walls := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: worldWidth, Y: 0}},
		{cp.Vector{X: worldWidth, Y: 0}, cp.Vector{X: worldWidth, Y: worldHeight}},
		{cp.Vector{X: worldWidth, Y: worldHeight}, cp.Vector{X: 0, Y: worldHeight}},
		{cp.Vector{X: 0, Y: worldHeight}, cp.Vector{X: 0, Y: 0}},
	}
	for _, w := range walls {
		shape := space.AddShape(cp.NewSegment(space.StaticBody, w.a, w.b, 4))
		shape.SetElasticity(0.9)
		shape.SetFriction(0.4)
	}

	s := &Scene{space: space}
	for i := 0; i < ballCount; i++ {
		mass := 1.0
		moment := cp.MomentForCircle(mass, 0, ballRadius, cp.Vector{})
		body := space.AddBody(cp.NewBody(mass, moment))
		body.SetPosition(cp.Vector{
			X: ballRadius + rand.Float64()*(worldWidth-2*ballRadius),
			Y: ballRadius + rand.Float64()*worldHeight/2,
		})
		body.SetVelocity(rand.Float64()*400-200, rand.Float64()*200-100)

		shape := space.AddShape(cp.NewCircle(body, ballRadius, cp.Vector{}))
		shape.SetElasticity(0.85)
		shape.SetFriction(0.4)

		s.balls = append(s.balls, body)
	}
	return s
}

func (s *Scene) Step(dt float64) {
	s.space.Step(dt)
}

func (s *Scene) Draw(screen *ebiten.Image, cam *ebitenhost.Camera) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff})

	pose := cam.Pose()
	toScreen := func(wx, wy float64) (float32, float32) {
		sx := (wx-pose.X)*pose.Scale + baseWidth/2.0
		sy := (wy-pose.Y)*pose.Scale + baseHeight/2.0
		return float32(sx), float32(sy)
	}

	gridColor := color.NRGBA{R: 0x2a, G: 0x2e, B: 0x3a, A: 0xff}
	for x := 0.0; x <= worldWidth; x += gridStep {
		x0, y0 := toScreen(x, 0)
		x1, y1 := toScreen(x, worldHeight)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
	for y := 0.0; y <= worldHeight; y += gridStep {
		x0, y0 := toScreen(0, y)
		x1, y1 := toScreen(worldWidth, y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}

	edgeColor := color.NRGBA{R: 0x55, G: 0x5c, B: 0x70, A: 0xff}
	x0, y0 := toScreen(0, 0)
	x1, y1 := toScreen(worldWidth, worldHeight)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, edgeColor, false)

	ballColor := color.NRGBA{R: 0xd8, G: 0x94, B: 0x3a, A: 0xff}
	for _, b := range s.balls {
		p := b.Position()
		cx, cy := toScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(ballRadius*pose.Scale), ballColor, true)
	}
}
