package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/glidecam/glidecam/config"
	"github.com/glidecam/glidecam/ebitenhost"
	"github.com/glidecam/glidecam/glide"
	"github.com/glidecam/glidecam/host"
	"github.com/glidecam/glidecam/notify"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// owner identity under which this layer registers its interceptions.
const interceptOwner host.Owner = "glidecam"

type Game struct {
	frames int

	runtime    *ebitenhost.Runtime
	controller *glide.Controller
	center     *notify.Center
	scene      *Scene
	tour       *Tour

	settingsPath string
	settings     config.Settings
	watcher      *config.Watcher

	ui        *settingsUI
	uiVisible bool

	clipboardOK bool
}

func NewGame(settingsPath, tourPath string) (*Game, error) {
	cam := ebitenhost.NewCamera(baseWidth, baseHeight)
	cam.SetWorldBounds(worldWidth, worldHeight)
	runtime := ebitenhost.NewRuntime(cam)

	center := notify.NewCenter()
	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Printf("settings: %v, falling back to defaults", err)
		center.Post(notify.Notice{Level: notify.Warning, Text: "Settings file unreadable; defaults in effect."})
		settings = config.Default()
	}

	g := &Game{
		runtime:      runtime,
		controller:   glide.NewController(runtime, interceptOwner, center),
		center:       center,
		scene:        NewScene(),
		settingsPath: settingsPath,
		settings:     settings,
	}

	// terminal startup failures are already posted as sticky notifications;
	// the demo keeps running with unmodified camera behavior
	if err := g.controller.Startup(settings); err != nil {
		log.Printf("glidecam: startup: %v", err)
	}

	if watcher, err := config.NewWatcher(settingsPath); err != nil {
		log.Printf("settings: watch %s: %v", settingsPath, err)
	} else {
		g.watcher = watcher
	}

	if tourPath != "" {
		tour, err := LoadTour(tourPath)
		if err != nil {
			return nil, fmt.Errorf("tour: %w", err)
		}
		g.tour = tour
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.ui = newSettingsUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	g.pollSettingsFile()
	g.handleKeys()

	g.runtime.SetInputCaptured(g.uiVisible)
	g.runtime.Update(dt)
	g.scene.Step(dt)
	if g.tour != nil {
		g.tour.Step(g.runtime)
	}
	if g.uiVisible {
		g.ui.ui.Update()
	}
	return nil
}

// pollSettingsFile drains the watcher on the game thread so reloads run on
// the same sequential queue as input and frame callbacks.
func (g *Game) pollSettingsFile() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.reloadSettings()
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("settings: watcher: %v", err)
		}
	default:
	}
}

func (g *Game) reloadSettings() {
	settings, err := config.Load(g.settingsPath)
	if err != nil {
		log.Printf("settings: reload: %v", err)
		return
	}
	g.settings = settings
	g.applySettings(false)
	g.center.Post(notify.Notice{Level: notify.Info, Text: "Settings reloaded."})
}

// applySettings pushes the current snapshot into the controller and, when
// persist is set, writes it back to disk.
func (g *Game) applySettings(persist bool) {
	for _, fix := range g.settings.Validate() {
		log.Printf("settings: %s", fix)
	}
	if err := g.controller.ApplySettings(g.settings); err != nil {
		log.Printf("glidecam: apply settings: %v", err)
	}
	if persist {
		if err := config.Save(g.settingsPath, g.settings); err != nil {
			log.Printf("settings: %v", err)
		}
	}
	g.ui = newSettingsUI(g)
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.uiVisible = !g.uiVisible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.clipboardOK {
		p := g.runtime.LivePose()
		clipboard.Write(clipboard.FmtText, fmt.Appendf(nil, "%.1f,%.1f,%.3f", p.X, p.Y, p.Scale))
		g.center.Post(notify.Notice{Level: notify.Info, Text: "Pose copied to clipboard."})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// home the camera through the host's own animation facility; with
		// smooth pan enabled the wrapped easing curve shapes this move
		g.runtime.AnimatePan(host.AnimatePanRequest{To: homePose(), Duration: 1.5})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) && g.tour != nil {
		g.tour.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.center.DismissNonSticky()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.runtime.Camera())
	g.drawNotices(screen)
	if g.uiVisible {
		g.ui.ui.Draw(screen)
	}

	p := g.runtime.LivePose()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f  pose: %.0f,%.0f x%.2f  mode: %s  animating: %v\nwheel: zoom  right-drag: pan  Tab: settings  R: home  C: copy pose",
		ebiten.ActualFPS(), p.X, p.Y, p.Scale, g.controller.Mode(), g.controller.Running()))
}

func (g *Game) drawNotices(screen *ebiten.Image) {
	y := baseHeight - 16
	for _, n := range g.center.Notices() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%s] %s", n.Level, n.Text), 8, y)
		y -= 16
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
