package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"zero", mgl32.Vec3{}, mgl32.Vec3{}},
		{"axis", mgl32.Vec3{0, 0, -3}, mgl32.Vec3{0, 0, -1}},
		{"diagonal", mgl32.Vec3{1, 0, -1}, mgl32.Vec3{float32(1 / math.Sqrt2), 0, float32(-1 / math.Sqrt2)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOrZero(tc.in)
			if !vecNear(got, tc.want, 1e-6) {
				t.Fatalf("NormalizeOrZero(%v) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if math.IsNaN(float64(got[i])) {
					t.Fatalf("component %d is NaN", i)
				}
			}
		})
	}
}

func TestLerpVec3(t *testing.T) {
	got := LerpVec3(mgl32.Vec3{}, mgl32.Vec3{0, 2.5, 8}, 0.5)
	if !vecNear(got, mgl32.Vec3{0, 1.25, 4}, 1e-6) {
		t.Fatalf("LerpVec3 = %v", got)
	}
}

func TestLookRotation(t *testing.T) {
	t.Run("points_forward_axis_at_target", func(t *testing.T) {
		dir := mgl32.Vec3{0, -1, -8}
		rot, ok := LookRotation(dir, Up)
		if !ok {
			t.Fatal("expected rotation")
		}
		got := rot.Rotate(Forward)
		if !vecNear(got, dir.Normalize(), 1e-4) {
			t.Fatalf("forward = %v, want %v", got, dir.Normalize())
		}
		if rot.Rotate(Up).Y() <= 0 {
			t.Fatalf("camera up flipped: %v", rot.Rotate(Up))
		}
	})
	t.Run("parallel_to_up", func(t *testing.T) {
		if _, ok := LookRotation(mgl32.Vec3{0, -2, 0}, Up); ok {
			t.Fatal("expected degenerate rotation")
		}
	})
	t.Run("zero", func(t *testing.T) {
		if _, ok := LookRotation(mgl32.Vec3{}, Up); ok {
			t.Fatal("expected degenerate rotation")
		}
	})
}
