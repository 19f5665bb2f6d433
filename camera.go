package rhomb3d

import "github.com/go-gl/mathgl/mgl64"

// Camera holds the accumulated orbit angles and the world-to-camera matrix
// rebuilt from them.
type Camera struct {
	angle mgl64.Vec3
	rev   mgl64.Mat4
}

func NewCamera(xa, ya, za float64) *Camera {
	c := &Camera{angle: mgl64.Vec3{xa, ya, za}}
	c.rebuild()
	return c
}

// AddAngle nudges the orbit angles, typically from a mouse drag.
func (c *Camera) AddAngle(x, y, z float64) {
	c.angle = c.angle.Add(mgl64.Vec3{x, y, z})
	c.rebuild()
}

func (c *Camera) rebuild() {
	rotX := mgl64.HomogRotate3DX(-c.angle.X())
	rotY := mgl64.HomogRotate3DY(-c.angle.Y())
	rotZ := mgl64.HomogRotate3DZ(-c.angle.Z())
	c.rev = rotZ.Mul4(rotY).Mul4(rotX)
}

// Matrix returns the world-to-camera transform.
func (c *Camera) Matrix() mgl64.Mat4 {
	return c.rev
}
