package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/glidecam/glidecam/config"
)

// settingsUI is the in-game settings dialog. It is rebuilt from scratch on
// every settings change, which keeps the labels honest without wiring
// per-widget update plumbing.
type settingsUI struct {
	ui *ebitenui.UI
}

func newSettingsUI(g *Game) *settingsUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 210})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	labelColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	// one settings row: a label plus adjustment buttons laid out horizontally
	row := func(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
		r := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		for _, c := range children {
			r.AddChild(c)
		}
		return r
	}
	label := func(text string) *widget.Text {
		return widget.NewText(widget.TextOpts.Text(text, &face, labelColor))
	}

	s := &g.settings

	title := widget.NewText(
		widget.TextOpts.Text("Smooth Camera", &face, labelColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	zoomToggle := row(
		label(fmt.Sprintf("Smooth zoom: %s", onOff(s.EnableZoom))),
		button("toggle", func() { s.EnableZoom = !s.EnableZoom; g.applySettings(true) }),
	)
	zoomSpeed := row(
		label(fmt.Sprintf("Zoom speed: %.1f", s.ZoomSpeed)),
		button("-", func() { s.ZoomSpeed -= 0.5; g.applySettings(true) }),
		button("+", func() { s.ZoomSpeed += 0.5; g.applySettings(true) }),
	)
	zoomStep := row(
		label(fmt.Sprintf("Zoom step: %.2f", s.ZoomStep)),
		button("-", func() { s.ZoomStep -= 0.01; g.applySettings(true) }),
		button("+", func() { s.ZoomStep += 0.01; g.applySettings(true) }),
	)
	panToggle := row(
		label(fmt.Sprintf("Smooth pan: %s", onOff(s.EnablePan))),
		button("toggle", func() { s.EnablePan = !s.EnablePan; g.applySettings(true) }),
	)
	panSpeed := row(
		label(fmt.Sprintf("Pan speed: %.1f", s.PanSpeed)),
		button("-", func() { s.PanSpeed -= 0.5; g.applySettings(true) }),
		button("+", func() { s.PanSpeed += 0.5; g.applySettings(true) }),
	)

	resetBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Reset defaults", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.settings = config.Default()
			g.applySettings(true)
		}),
	)
	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.uiVisible = false
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(zoomToggle)
	panel.AddChild(zoomSpeed)
	panel.AddChild(zoomStep)
	panel.AddChild(panToggle)
	panel.AddChild(panSpeed)
	panel.AddChild(resetBtn)
	panel.AddChild(closeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &settingsUI{ui: &ebitenui.UI{Container: root}}
}
