package input

import "github.com/go-gl/mathgl/mgl32"

// PointerState reports the primary pointer (mouse or first touch).
type PointerState interface {
	Pointer() (x, y int, down bool)
}

// DragStick turns a pointer drag into joystick samples. The stick origin is
// where the press started; Radius pixels of travel is full deflection.
type DragStick struct {
	Pointer PointerState
	Out     *Joystick
	Radius  float32

	origin   mgl32.Vec2
	dragging bool
}

func NewDragStick(p PointerState, out *Joystick) *DragStick {
	return &DragStick{Pointer: p, Out: out, Radius: 64}
}

// Update pushes one sample per frame while the pointer is held.
func (d *DragStick) Update() {
	if d == nil || d.Pointer == nil || d.Out == nil {
		return
	}
	x, y, down := d.Pointer.Pointer()
	if !down {
		d.dragging = false
		return
	}
	pos := mgl32.Vec2{float32(x), float32(y)}
	if !d.dragging {
		d.dragging = true
		d.origin = pos
	}
	radius := d.Radius
	if radius <= 0 {
		radius = 1
	}
	delta := pos.Sub(d.origin)
	// Screen Y grows downward; stick Y grows upward.
	d.Out.Push(mgl32.Vec2{delta.X() / radius, -delta.Y() / radius})
}

func (d *DragStick) Active() (origin mgl32.Vec2, ok bool) {
	if d == nil {
		return mgl32.Vec2{}, false
	}
	return d.origin, d.dragging
}
