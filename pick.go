package rhomb3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const pickEpsilon = 1e-6

// LineIntersectsPolygon reports whether the segment from start to end
// passes through a planar convex polygon.
func LineIntersectsPolygon(start, end mgl64.Vec3, polygon []mgl64.Vec3) bool {
	if len(polygon) < 3 {
		return false
	}

	p0 := polygon[0]
	planeNormal := polygon[1].Sub(p0).Cross(polygon[2].Sub(p0))

	lineDir := end.Sub(start)
	dotNormalDir := planeNormal.Dot(lineDir)
	if math.Abs(dotNormalDir) < pickEpsilon {
		return false // parallel to the plane
	}

	t := -planeNormal.Dot(start.Sub(p0)) / dotNormalDir
	if t < -pickEpsilon || t > 1+pickEpsilon {
		return false
	}

	hit := start.Add(lineDir.Mul(t))
	return pointInPolygon(hit, polygon, planeNormal)
}

// pointInPolygon ray-casts in 2D after dropping the dominant axis of the
// plane normal, which keeps the projection non-degenerate.
func pointInPolygon(point mgl64.Vec3, polygon []mgl64.Vec3, normal mgl64.Vec3) bool {
	absX := math.Abs(normal.X())
	absY := math.Abs(normal.Y())
	absZ := math.Abs(normal.Z())

	var u, v int
	switch {
	case absX > absY && absX > absZ:
		u, v = 1, 2
	case absY > absX && absY > absZ:
		u, v = 0, 2
	default:
		u, v = 0, 1
	}

	pu, pv := point[u], point[v]

	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		au, av := a[u], a[v]
		bu, bv := b[u], b[v]

		if (av > pv) != (bv > pv) {
			crossing := (bu-au)*(pv-av)/(bv-av) + au
			if pu < crossing {
				inside = !inside
			}
		}
	}
	return inside
}

// PickFace casts a ray from the camera origin through the given camera-space
// direction and returns the index of the nearest face it passes through, or
// -1. Back faces are skipped so the hit matches what is on screen.
func (m *Model) PickFace(dir mgl64.Vec3) int {
	start := mgl64.Vec3{}
	end := dir.Mul(1e6)

	best := -1
	bestDist := math.MaxFloat64
	poly := make([]mgl64.Vec3, 4)
	for fi, f := range m.faces {
		n := m.transNormals[fi]
		if n.Dot(m.transPoints[f.ring[0]]) >= 0 {
			continue
		}
		for i, pi := range f.ring {
			poly[i] = m.transPoints[pi]
		}
		if !LineIntersectsPolygon(start, end, poly) {
			continue
		}

		var centre mgl64.Vec3
		for _, p := range poly {
			centre = centre.Add(p)
		}
		if d := centre.Mul(0.25).Len(); d < bestDist {
			bestDist = d
			best = fi
		}
	}
	return best
}

// PickFaceAt picks from a screen position by inverting the projection.
func (m *Model) PickFaceAt(sx, sy, screenW, screenH float64) int {
	x, y := ConvertFromScreen(screenW, screenH, sx, sy, 1)
	return m.PickFace(mgl64.Vec3{x, y, 1})
}
