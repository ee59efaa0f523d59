package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState answers level-triggered key queries.
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

type Keyboard struct {
	Keys KeyState

	Up    ebiten.Key
	Down  ebiten.Key
	Left  ebiten.Key
	Right ebiten.Key
	Jump  ebiten.Key
}

// NewKeyboard binds the arrow keys and Space.
func NewKeyboard(keys KeyState) *Keyboard {
	return &Keyboard{
		Keys:  keys,
		Up:    ebiten.KeyArrowUp,
		Down:  ebiten.KeyArrowDown,
		Left:  ebiten.KeyArrowLeft,
		Right: ebiten.KeyArrowRight,
		Jump:  ebiten.KeySpace,
	}
}

func (k *Keyboard) Poll() Contribution {
	if k == nil || k.Keys == nil {
		return Contribution{}
	}
	var dir mgl32.Vec3
	if k.Keys.IsKeyPressed(k.Up) {
		dir[2] -= 1
	}
	if k.Keys.IsKeyPressed(k.Down) {
		dir[2] += 1
	}
	if k.Keys.IsKeyPressed(k.Left) {
		dir[0] -= 1
	}
	if k.Keys.IsKeyPressed(k.Right) {
		dir[0] += 1
	}
	return Contribution{Direction: dir, Jump: k.Keys.IsKeyPressed(k.Jump)}
}
