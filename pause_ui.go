package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/catjump/common"
	"golang.org/x/image/font/basicfont"
)

var (
	overlayColor  = color.NRGBA{R: 0x10, G: 0x18, B: 0x24, A: 0xd0}
	buttonIdle    = color.NRGBA{R: 0xf2, G: 0xa1, B: 0x4b, A: 0xff}
	buttonHover   = color.NRGBA{R: 0xf7, G: 0xb9, B: 0x72, A: 0xff}
	buttonPressed = color.NRGBA{R: 0xc7, G: 0x7d, B: 0x2e, A: 0xff}
	titleColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hintColor     = color.NRGBA{R: 0xbb, G: 0xc4, B: 0xd0, A: 0xff}
	buttonText    = color.NRGBA{R: 0x1a, G: 0x12, B: 0x08, A: 0xff}
)

// NewPauseUI builds the Escape overlay: resume, send the cat back to its
// spawn point, and flip the camera blend clamp while watching the effect.
func NewPauseUI(g *Game) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(overlayColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*2/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(pauseLabel(&face, "Anoncat Jump Jump", titleColor))
	panel.AddChild(pauseLabel(&face, "Arrows move, Space jumps", hintColor))
	panel.AddChild(pauseButton(&face, "Resume", func() { g.paused = false }))
	panel.AddChild(pauseButton(&face, "Respawn", g.respawnPlayer))

	var clampBtn *widget.Button
	clampBtn = pauseButton(&face, clampLabel(g.clampBlend), func() {
		clampBtn.Text().Label = clampLabel(g.toggleClampBlend())
	})
	panel.AddChild(clampBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func clampLabel(on bool) string {
	if on {
		return "Camera clamp: on"
	}
	return "Camera clamp: off"
}

func pauseLabel(face *ebtext.Face, text string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func pauseButton(face *ebtext.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Hover:   imageui.NewNineSliceColor(buttonHover),
			Pressed: imageui.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: buttonText}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 32),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
