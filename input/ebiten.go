package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenKeys reads the live ebiten keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// EbitenTouches reads live touches against a fixed logical screen size.
type EbitenTouches struct {
	Width, Height int

	ids []ebiten.TouchID
}

func (t *EbitenTouches) Touches() []image.Point {
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])
	out := make([]image.Point, 0, len(t.ids))
	for _, id := range t.ids {
		x, y := ebiten.TouchPosition(id)
		out = append(out, image.Pt(x, y))
	}
	return out
}

func (t *EbitenTouches) ScreenSize() (int, int) {
	return t.Width, t.Height
}

// EbitenPointer prefers the first touch and falls back to the left mouse
// button.
type EbitenPointer struct {
	ids []ebiten.TouchID
}

func (p *EbitenPointer) Pointer() (int, int, bool) {
	p.ids = ebiten.AppendTouchIDs(p.ids[:0])
	if len(p.ids) > 0 {
		x, y := ebiten.TouchPosition(p.ids[0])
		return x, y, true
	}
	x, y := ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
