package rhomb3d

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// WritePLY serialises mesh descriptors as ascii PLY with colors on the face
// element. Shared corners are deduplicated, so a rhombohedron comes out as
// 8 vertices and 12 colored triangles.
func WritePLY(w io.Writer, descs []MeshDescriptor) error {
	if len(descs) == 0 {
		return fmt.Errorf("no mesh descriptors to export")
	}

	type plyFace struct {
		indices [3]int
		r, g, b uint8
	}

	var points []mgl64.Vec3
	pointIndex := make(map[[3]float64]int)
	addPoint := func(p mgl64.Vec3) int {
		key := [3]float64{p.X(), p.Y(), p.Z()}
		if i, ok := pointIndex[key]; ok {
			return i
		}
		points = append(points, p)
		pointIndex[key] = len(points) - 1
		return len(points) - 1
	}

	var faces []plyFace
	for _, d := range descs {
		for tri := 0; tri < 2; tri++ {
			var f plyFace
			for c := 0; c < 3; c++ {
				i := (tri*3 + c) * 3
				p := mgl64.Vec3{d.Coords[i], d.Coords[i+1], d.Coords[i+2]}
				f.indices[c] = addPoint(p.Add(d.Position))
			}
			f.r, f.g, f.b = d.Color.R, d.Color.G, d.Color.B
			faces = append(faces, f)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintln(bw, "comment generated by rhomb3d")
	fmt.Fprintf(bw, "element vertex %d\n", len(points))
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintf(bw, "element face %d\n", len(faces))
	fmt.Fprintln(bw, "property list uchar int vertex_indices")
	fmt.Fprintln(bw, "property uchar red")
	fmt.Fprintln(bw, "property uchar green")
	fmt.Fprintln(bw, "property uchar blue")
	fmt.Fprintln(bw, "end_header")

	for _, p := range points {
		fmt.Fprintf(bw, "%f %f %f\n", p.X(), p.Y(), p.Z())
	}
	for _, f := range faces {
		fmt.Fprintf(bw, "3 %d %d %d %d %d %d\n", f.indices[0], f.indices[1], f.indices[2], f.r, f.g, f.b)
	}

	return bw.Flush()
}

// SavePLY writes the descriptors to a file.
func SavePLY(fileName string, descs []MeshDescriptor) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WritePLY(file, descs); err != nil {
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return nil
}
