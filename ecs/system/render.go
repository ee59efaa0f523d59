package system

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/catjump/ecs"
	"github.com/milk9111/catjump/ecs/component"
)

var (
	skyColor    = color.NRGBA{R: 0x9c, G: 0xc7, B: 0xe8, A: 0xff}
	floorColor  = color.NRGBA{R: 0x5a, G: 0x8f, B: 0x4e, A: 0xff}
	gridColor   = color.NRGBA{R: 0x3e, G: 0x6b, B: 0x36, A: 0xff}
	playerColor = color.NRGBA{R: 0xf2, G: 0xa1, B: 0x4b, A: 0xff}
	shadowColor = color.NRGBA{A: 0x60}
)

const gridCells = 10

// RenderSystem draws a debug projection of the scene from the camera.
type RenderSystem struct {
	Debug bool

	player ecs.Handle
	camera ecs.Handle
}

func NewRenderSystem(player, camera ecs.Handle) *RenderSystem {
	return &RenderSystem{player: player, camera: camera}
}

// ViewProjection builds the clip transform for a camera transform.
func ViewProjection(t component.Transform, proj component.Projection, aspect float32) mgl32.Mat4 {
	view := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4()).Inv()
	return mgl32.Perspective(proj.FovY, aspect, proj.Near, proj.Far).Mul4(view)
}

// Project maps a world point to screen pixels. ok is false for points behind
// the camera.
func Project(viewProj mgl32.Mat4, p mgl32.Vec3, width, height float32) (float32, float32, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-4 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * width, (1 - ndc.Y()) / 2 * height, true
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(skyColor)

	ce, ok := r.camera.Entity(w)
	if !ok {
		return
	}
	camTransform, okT := ecs.Get(w, ce, component.TransformComponent.Kind())
	proj, okP := ecs.Get(w, ce, component.ProjectionComponent.Kind())
	if !okT || !okP {
		return
	}
	b := screen.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	vp := ViewProjection(*camTransform, *proj, sw/sh)
	tint := lightTint(w)

	ecs.ForEach2(w, component.StaticColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, col *component.StaticCollider, t *component.Transform) {
		r.drawFloor(screen, vp, t.Position, col.HalfExtents, tint)
	})

	pe, ok := r.player.Entity(w)
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, pe, component.TransformComponent.Kind())
	if !ok {
		return
	}
	radius := float32(0.4)
	if body, ok := ecs.Get(w, pe, component.PhysicsBodyComponent.Kind()); ok && body.Radius > 0 {
		radius = body.Radius
	}
	if top, ok := floorBelow(w, pt.Position); ok {
		r.drawSphere(screen, vp, mgl32.Vec3{pt.Position.X(), top, pt.Position.Z()}, radius, shadowColor)
	}
	r.drawSphere(screen, vp, pt.Position, radius, modulate(playerColor, tint))

	if r.Debug {
		r.drawHUD(w, pe, screen)
	}
}

func (r *RenderSystem) drawFloor(screen *ebiten.Image, vp mgl32.Mat4, center, half mgl32.Vec3, tint color.NRGBA) {
	b := screen.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	y := center.Y() + half.Y()
	line := func(a, c mgl32.Vec3, clr color.Color) {
		x0, y0, ok0 := Project(vp, a, sw, sh)
		x1, y1, ok1 := Project(vp, c, sw, sh)
		if ok0 && ok1 {
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
		}
	}
	minX, maxX := center.X()-half.X(), center.X()+half.X()
	minZ, maxZ := center.Z()-half.Z(), center.Z()+half.Z()
	grid := modulate(gridColor, tint)
	for i := 1; i < gridCells; i++ {
		f := float32(i) / gridCells
		x := minX + f*(maxX-minX)
		z := minZ + f*(maxZ-minZ)
		line(mgl32.Vec3{x, y, minZ}, mgl32.Vec3{x, y, maxZ}, grid)
		line(mgl32.Vec3{minX, y, z}, mgl32.Vec3{maxX, y, z}, grid)
	}
	edge := modulate(floorColor, tint)
	corners := []mgl32.Vec3{{minX, y, minZ}, {maxX, y, minZ}, {maxX, y, maxZ}, {minX, y, maxZ}}
	for i := range corners {
		line(corners[i], corners[(i+1)%len(corners)], edge)
	}
}

func (r *RenderSystem) drawSphere(screen *ebiten.Image, vp mgl32.Mat4, center mgl32.Vec3, radius float32, clr color.Color) {
	b := screen.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	cx, cy, ok := Project(vp, center, sw, sh)
	if !ok {
		return
	}
	_, ty, ok := Project(vp, center.Add(mgl32.Vec3{0, radius, 0}), sw, sh)
	if !ok {
		return
	}
	pr := cy - ty
	if pr < 1 {
		pr = 1
	}
	vector.DrawFilledCircle(screen, cx, cy, pr, clr, true)
}

func (r *RenderSystem) drawHUD(w *ecs.World, player ecs.Entity, screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS %.0f  TPS %.0f  frame %d", ebiten.ActualFPS(), ebiten.ActualTPS(), w.Frame())
	if mi, ok := ecs.Get(w, player, component.MotionIntentComponent.Kind()); ok {
		msg += fmt.Sprintf("\nintent (%.2f, %.2f, %.2f) jump=%v", mi.Direction.X(), mi.Direction.Y(), mi.Direction.Z(), mi.Jump)
	}
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		msg += fmt.Sprintf("\ngrounded=%v jumping=%v vy=%.2f", body.Grounded, body.Jumping, body.VerticalVelocity)
	}
	if anim, ok := ecs.Get(w, player, component.AnimationPlayerComponent.Kind()); ok {
		msg += fmt.Sprintf("\nclip %d loop=%v t=%.2f", anim.Current, anim.Looping, anim.Elapsed)
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// floorBelow returns the highest collider top under p.
func floorBelow(w *ecs.World, p mgl32.Vec3) (float32, bool) {
	var (
		top   float32
		found bool
	)
	ecs.ForEach2(w, component.StaticColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, col *component.StaticCollider, t *component.Transform) {
		d := p.Sub(t.Position)
		if mgl32.Abs(d.X()) > col.HalfExtents.X() || mgl32.Abs(d.Z()) > col.HalfExtents.Z() {
			return
		}
		surface := t.Position.Y() + col.HalfExtents.Y()
		if surface <= p.Y() && (!found || surface > top) {
			top = surface
			found = true
		}
	})
	return top, found
}

// lightTint averages the directional light colors. Point lights are ignored.
func lightTint(w *ecs.World) color.NRGBA {
	var r, g, b, n float32
	ecs.ForEach(w, component.LightComponent.Kind(), func(_ ecs.Entity, l *component.Light) {
		if l.Kind != component.DirectionalLight {
			return
		}
		r += float32(l.Color.R)
		g += float32(l.Color.G)
		b += float32(l.Color.B)
		n++
	})
	if n == 0 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff}
}

func modulate(c, tint color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 0xff),
		G: uint8(uint16(c.G) * uint16(tint.G) / 0xff),
		B: uint8(uint16(c.B) * uint16(tint.B) / 0xff),
		A: c.A,
	}
}
