package common

import "github.com/go-gl/mathgl/mgl32"

const (
	BaseWidth  = 480
	BaseHeight = 800

	Gravity = 9.81
)

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Forward = mgl32.Vec3{0, 0, -1}
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

func Clamp01(t float32) float32 {
	return mgl32.Clamp(t, 0, 1)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no length.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// LookRotation returns the orientation whose -Z axis points along forward
// with up as close to the given up vector as possible. ok is false when
// forward is zero or parallel to up.
func LookRotation(forward, up mgl32.Vec3) (mgl32.Quat, bool) {
	f := NormalizeOrZero(forward)
	if f.Len() == 0 {
		return mgl32.QuatIdent(), false
	}
	right := f.Cross(up)
	if right.Len() < 1e-6 {
		return mgl32.QuatIdent(), false
	}
	right = right.Normalize()
	trueUp := right.Cross(f)
	basis := mgl32.Mat3FromCols(right, trueUp, f.Mul(-1))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize(), true
}
