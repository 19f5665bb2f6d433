package rhomb3d

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	nearPlaneZ       = 25.0
	conversionFactor = 700.0
)

// ConvertToScreenX projects a camera-space x at depth z onto the screen.
func ConvertToScreenX(screenW, screenH, x, z float64) float32 {
	return float32(conversionFactor*x/z + screenW/2)
}

// ConvertToScreenY projects a camera-space y at depth z onto the screen.
func ConvertToScreenY(screenW, screenH, y, z float64) float32 {
	return float32(conversionFactor*y/z + screenH/2)
}

// ConvertFromScreen inverts the projection for a known depth.
func ConvertFromScreen(screenW, screenH, sx, sy, z float64) (float64, float64) {
	return (sx - screenW/2) * z / conversionFactor, (sy - screenH/2) * z / conversionFactor
}

type modelFace struct {
	ring  [4]int // quad corners into the point buffer, wound outward
	color color.RGBA
}

// Model is a renderable solid built once from mesh descriptors. The base
// buffers stay immutable; Transform rewrites the trans buffers each frame,
// so a Model can be re-posed without touching the generator.
type Model struct {
	points       []mgl64.Vec3
	normals      []mgl64.Vec3 // one per face
	transPoints  []mgl64.Vec3
	transNormals []mgl64.Vec3
	faces        []modelFace

	pose    mgl64.Mat4
	hovered int
}

// NewModel reassembles the shared corner mesh from triangulated face
// buffers. The 36 incoming triangle corners collapse onto the 8 solid
// corners; each face keeps its outward winding as a quad ring.
func NewModel(descs []MeshDescriptor) (*Model, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("no mesh descriptors supplied")
	}

	m := &Model{pose: mgl64.Ident4(), hovered: -1}
	pointIndex := make(map[[3]float64]int)

	addPoint := func(p mgl64.Vec3) int {
		key := [3]float64{p.X(), p.Y(), p.Z()}
		if i, ok := pointIndex[key]; ok {
			return i
		}
		m.points = append(m.points, p)
		pointIndex[key] = len(m.points) - 1
		return len(m.points) - 1
	}

	for di, d := range descs {
		var corners [6]int
		for i := 0; i < 6; i++ {
			p := mgl64.Vec3{d.Coords[i*3], d.Coords[i*3+1], d.Coords[i*3+2]}
			corners[i] = addPoint(p.Add(d.Position))
		}

		ring, err := quadRing(corners)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", di, err)
		}

		p0, p1, p2 := m.points[ring[0]], m.points[ring[1]], m.points[ring[2]]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Len() == 0 {
			return nil, fmt.Errorf("face %d is degenerate", di)
		}
		m.normals = append(m.normals, n.Normalize())
		m.faces = append(m.faces, modelFace{ring: ring, color: d.Color})
	}

	m.transPoints = make([]mgl64.Vec3, len(m.points))
	m.transNormals = make([]mgl64.Vec3, len(m.normals))
	return m, nil
}

// quadRing merges a face's two triangles back into one outward-wound quad.
// The triangles share a diagonal, so each has exactly one corner the other
// lacks; walking the first triangle from its unique corner and inserting
// the second's unique corner before the far diagonal end preserves the
// winding of the first triangle.
func quadRing(corners [6]int) ([4]int, error) {
	t1 := corners[0:3]
	t2 := corners[3:6]

	inT2 := func(idx int) bool {
		return idx == t2[0] || idx == t2[1] || idx == t2[2]
	}
	inT1 := func(idx int) bool {
		return idx == t1[0] || idx == t1[1] || idx == t1[2]
	}

	u1 := -1
	for i, idx := range t1 {
		if !inT2(idx) {
			if u1 >= 0 {
				return [4]int{}, fmt.Errorf("triangles do not share a diagonal")
			}
			u1 = i
		}
	}
	u2 := -1
	for _, idx := range t2 {
		if !inT1(idx) {
			if u2 >= 0 {
				return [4]int{}, fmt.Errorf("triangles do not share a diagonal")
			}
			u2 = idx
		}
	}
	if u1 < 0 || u2 < 0 {
		return [4]int{}, fmt.Errorf("triangles do not share a diagonal")
	}

	return [4]int{t1[u1], t1[(u1+1)%3], u2, t1[(u1+2)%3]}, nil
}

// SetPose sets the object-space rotation for the next Transform. Pose is
// an input owned by the caller, typically advanced once per frame.
func (m *Model) SetPose(pose mgl64.Mat4) {
	m.pose = pose
}

// SetHovered marks the face to highlight, -1 for none.
func (m *Model) SetHovered(face int) {
	m.hovered = face
}

// Hovered reports the currently highlighted face, -1 for none.
func (m *Model) Hovered() int {
	return m.hovered
}

// FaceCount returns the number of faces in the model.
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// Transform moves the model through pose then view into camera space.
func (m *Model) Transform(view mgl64.Mat4) {
	full := view.Mul4(m.pose)
	TransformPoints(full, m.points, m.transPoints)
	TransformNormals(full, m.normals, m.transNormals)
}

// Paint draws the camera-space model with back-face culling, far-to-near
// face order and flat shading. (cx, cy) is the screen centre.
func (m *Model) Paint(screen *ebiten.Image, cx, cy int, shade bool) {
	type paintable struct {
		face int
		avgZ float64
	}

	visible := make([]paintable, 0, len(m.faces))
	for fi, f := range m.faces {
		n := m.transNormals[fi]
		first := m.transPoints[f.ring[0]]
		// Outward normals face away from the camera at the origin, so a
		// face is visible when the dot product is negative.
		if n.Dot(first) >= 0 {
			continue
		}
		var sum float64
		for _, pi := range f.ring {
			sum += m.transPoints[pi].Z()
		}
		visible = append(visible, paintable{face: fi, avgZ: sum / 4})
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].avgZ > visible[j].avgZ
	})

	xp := make([]float32, 4)
	yp := make([]float32, 4)
	for _, pf := range visible {
		f := m.faces[pf.face]

		clipped := false
		for i, pi := range f.ring {
			p := m.transPoints[pi]
			if p.Z() <= nearPlaneZ {
				clipped = true
				break
			}
			xp[i] = float32(conversionFactor*p.X()/p.Z()) + float32(cx)
			yp[i] = float32(conversionFactor*p.Y()/p.Z()) + float32(cy)
		}
		if clipped {
			continue
		}

		col := f.color
		if shade {
			col = shadeColor(m.transPoints[f.ring[0]], m.transNormals[pf.face], col)
		}
		if pf.face == m.hovered {
			col = brighten(col, 60)
		}

		fillConvexPolygon(screen, xp, yp, col)
		drawPolygonOutline(screen, xp, yp, 1.0, color.RGBA{R: 40, G: 40, B: 40, A: 140})
	}
}

// shadeColor applies the ambient-plus-spotlight model: a floor of ambient
// light, a diffuse term from how squarely the face meets the view axis and
// a cone term that concentrates the light at the screen centre.
func shadeColor(point, normal mgl64.Vec3, col color.RGBA) color.RGBA {
	const ambientLight = 0.65
	const spotlightConePower = 10.0
	const spotlightLightAmount = 1.0 - ambientLight

	// Visible faces have normals with negative z in camera space.
	diffuseFactor := -normal.Z()
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	spotlightFactor := 1.0
	if l := point.Len(); l > 0 {
		cosAngle := point.Z() / l
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	}

	brightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	c := 240 - int(brightness*240)
	const floor = 7
	r := clamp(int(col.R)-c, floor, 255)
	g := clamp(int(col.G)-c, floor, 255)
	b := clamp(int(col.B)-c, floor, 255)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: col.A}
}

func brighten(col color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(clamp(int(col.R)+amount, 0, 255)),
		G: uint8(clamp(int(col.G)+amount, 0, 255)),
		B: uint8(clamp(int(col.B)+amount, 0, 255)),
		A: col.A,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
