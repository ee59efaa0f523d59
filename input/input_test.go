package input

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func approxVec(t *testing.T, got, want mgl32.Vec3, field string) {
	t.Helper()
	if !vecNear(got, want, 1e-6) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}

func TestKeyboardCombinations(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight}
	unit := map[ebiten.Key]mgl32.Vec3{
		ebiten.KeyArrowUp:    {0, 0, -1},
		ebiten.KeyArrowDown:  {0, 0, 1},
		ebiten.KeyArrowLeft:  {-1, 0, 0},
		ebiten.KeyArrowRight: {1, 0, 0},
	}

	for mask := 0; mask < 16; mask++ {
		held := fakeKeys{}
		var sum mgl32.Vec3
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				held[k] = true
				sum = sum.Add(unit[k])
			}
		}
		intent := NewAggregator(NewKeyboard(held)).Poll()

		var want mgl32.Vec3
		if l := sum.Len(); l > 0 {
			want = sum.Mul(1 / l)
		}
		approxVec(t, intent.Direction, want, "direction")
		if l := intent.Direction.Len(); l != 0 && math.Abs(float64(l)-1) > 1e-6 {
			t.Fatalf("mask %04b: length %v, want 1 or 0", mask, l)
		}
	}
}

func TestNoInputIsExactlyZero(t *testing.T) {
	intent := NewAggregator(NewKeyboard(fakeKeys{}), &Joystick{}, &Touch{}).Poll()
	if intent.Direction != (mgl32.Vec3{}) {
		t.Fatalf("direction = %v, want exact zero", intent.Direction)
	}
	for i, c := range intent.Direction {
		if math.IsNaN(float64(c)) {
			t.Fatalf("component %d is NaN", i)
		}
	}
	if intent.Jump {
		t.Fatal("jump set without input")
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	intent := NewAggregator(NewKeyboard(fakeKeys{ebiten.KeyArrowLeft: true, ebiten.KeyArrowRight: true})).Poll()
	if intent.Direction != (mgl32.Vec3{}) {
		t.Fatalf("direction = %v, want zero", intent.Direction)
	}
}

func TestJumpIsLevelTriggered(t *testing.T) {
	keys := fakeKeys{ebiten.KeySpace: true}
	agg := NewAggregator(NewKeyboard(keys))
	for frame := 0; frame < 3; frame++ {
		if !agg.Poll().Jump {
			t.Fatalf("frame %d: jump should be true while held", frame)
		}
	}
	keys[ebiten.KeySpace] = false
	if agg.Poll().Jump {
		t.Fatal("jump should be false the frame it is released")
	}
}

func TestJoystick(t *testing.T) {
	t.Run("single_axis", func(t *testing.T) {
		js := &Joystick{}
		js.Push(mgl32.Vec2{1, 0})
		approxVec(t, NewAggregator(js).Poll().Direction, mgl32.Vec3{1, 0, 0}, "direction")
	})
	t.Run("with_up_key", func(t *testing.T) {
		js := &Joystick{}
		js.Push(mgl32.Vec2{1, 0})
		intent := NewAggregator(NewKeyboard(fakeKeys{ebiten.KeyArrowUp: true}), js).Poll()
		approxVec(t, intent.Direction, mgl32.Vec3{1, 0, -1}.Normalize(), "direction")
	})
	t.Run("samples_sum", func(t *testing.T) {
		js := &Joystick{}
		js.Push(mgl32.Vec2{0.5, 0})
		js.Push(mgl32.Vec2{0.25, 0.5})
		c := js.Poll()
		approxVec(t, c.Direction, mgl32.Vec3{0.75, 0, -0.5}, "raw sum")
	})
	t.Run("drains_each_frame", func(t *testing.T) {
		js := &Joystick{}
		js.Push(mgl32.Vec2{0, 1})
		agg := NewAggregator(js)
		approxVec(t, agg.Poll().Direction, mgl32.Vec3{0, 0, -1}, "first frame")
		if js.Pending() != 0 {
			t.Fatalf("pending = %d after poll", js.Pending())
		}
		approxVec(t, agg.Poll().Direction, mgl32.Vec3{}, "second frame")
	})
	t.Run("clamps_axis", func(t *testing.T) {
		js := &Joystick{}
		js.Push(mgl32.Vec2{3, -2})
		approxVec(t, js.Poll().Direction, mgl32.Vec3{1, 0, 1}, "clamped")
	})
}

type fakeTouches struct {
	points []image.Point
}

func (f fakeTouches) Touches() []image.Point  { return f.points }
func (f fakeTouches) ScreenSize() (int, int) { return 480, 800 }

func TestTouchQuadrants(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		points  []image.Point
		want    mgl32.Vec3
	}{
		{"disabled_by_default", false, []image.Point{{10, 10}}, mgl32.Vec3{}},
		{"no_touch", true, nil, mgl32.Vec3{}},
		{"upper_left", true, []image.Point{{10, 10}}, mgl32.Vec3{-1, 0, -1}},
		{"upper_right", true, []image.Point{{400, 10}}, mgl32.Vec3{1, 0, -1}},
		{"lower_left", true, []image.Point{{10, 700}}, mgl32.Vec3{-1, 0, 1}},
		{"lower_right", true, []image.Point{{400, 700}}, mgl32.Vec3{1, 0, 1}},
		{"first_touch_wins", true, []image.Point{{400, 700}, {10, 10}}, mgl32.Vec3{1, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			touch := &Touch{State: fakeTouches{tc.points}, Enabled: tc.enabled}
			approxVec(t, touch.Poll().Direction, tc.want, "direction")
		})
	}
}

type fakePointer struct {
	x, y int
	down bool
}

func (f *fakePointer) Pointer() (int, int, bool) { return f.x, f.y, f.down }

func TestDragStick(t *testing.T) {
	p := &fakePointer{x: 100, y: 100, down: true}
	js := &Joystick{}
	d := NewDragStick(p, js)

	d.Update()
	approxVec(t, js.Poll().Direction, mgl32.Vec3{}, "press frame")

	p.x, p.y = 164, 36 // right and up by one radius
	d.Update()
	approxVec(t, js.Poll().Direction, mgl32.Vec3{1, 0, -1}, "drag")

	p.down = false
	d.Update()
	if js.Pending() != 0 {
		t.Fatal("released pointer should not push samples")
	}
	if _, ok := d.Active(); ok {
		t.Fatal("drag should end on release")
	}
}

func TestScript(t *testing.T) {
	t.Run("drives_axes_and_jump", func(t *testing.T) {
		src := []byte(`
axis_x = 1
if frame % 2 == 0 {
	jump = true
}
`)
		s, err := NewScript("test", src)
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		first := s.Poll()
		approxVec(t, first.Direction, mgl32.Vec3{1, 0, 0}, "direction")
		if first.Jump {
			t.Fatal("frame 1 should not jump")
		}
		if !s.Poll().Jump {
			t.Fatal("frame 2 should jump")
		}
		if s.Frame() != 2 {
			t.Fatalf("Frame() = %d", s.Frame())
		}
	})
	t.Run("axis_y_maps_to_forward", func(t *testing.T) {
		s, err := NewScript("test", []byte(`axis_y = 1`))
		if err != nil {
			t.Fatal(err)
		}
		approxVec(t, s.Poll().Direction, mgl32.Vec3{0, 0, -1}, "direction")
	})
	t.Run("reload_replaces_program", func(t *testing.T) {
		s, err := NewScript("live", []byte(`axis_x = 1 / (frame - 1)`))
		if err != nil {
			t.Fatal(err)
		}
		s.Poll()
		if err := s.Reload([]byte(`axis_x = `)); err == nil {
			t.Fatal("expected compile error on reload")
		}
		if err := s.Reload([]byte(`axis_x = -1`)); err != nil {
			t.Fatalf("Reload: %v", err)
		}
		approxVec(t, s.Poll().Direction, mgl32.Vec3{-1, 0, 0}, "direction")
		if s.Frame() != 2 {
			t.Fatalf("Frame() = %d, want the count to carry on", s.Frame())
		}
	})
	t.Run("compile_error", func(t *testing.T) {
		if _, err := NewScript("bad", []byte(`axis_x = `)); err == nil {
			t.Fatal("expected compile error")
		}
	})
	t.Run("runtime_error_disables", func(t *testing.T) {
		s, err := NewScript("div", []byte(`axis_x = 1 / (frame - 1)`))
		if err != nil {
			t.Fatal(err)
		}
		if c := s.Poll(); c.Direction != (mgl32.Vec3{}) {
			t.Fatalf("expected zero contribution on failure, got %v", c.Direction)
		}
		if c := s.Poll(); c.Direction != (mgl32.Vec3{}) {
			t.Fatalf("failed script should stay disabled, got %v", c.Direction)
		}
	})
}
