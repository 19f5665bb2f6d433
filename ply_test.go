package rhomb3d

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePLY(t *testing.T) {
	descs, err := GenerateRhombohedron(Acute, 100, mgl64.Vec3{}, testPalette())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePLY(&buf, descs))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ply\nformat ascii 1.0\n"))
	assert.Contains(t, out, "element vertex 8\n")
	assert.Contains(t, out, "element face 12\n")
	assert.Contains(t, out, "property list uchar int vertex_indices\n")
	assert.Contains(t, out, "end_header\n")

	// 13 header lines, 8 vertices, 12 faces.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 13+8+12)

	// Face lines carry three indices and the face color.
	faceLine := lines[13+8]
	fields := strings.Fields(faceLine)
	require.Len(t, fields, 7)
	assert.Equal(t, "3", fields[0])
	want := fmt.Sprintf("%d %d %d", DefaultFaceColors[0].R, DefaultFaceColors[0].G, DefaultFaceColors[0].B)
	assert.Equal(t, want, strings.Join(fields[4:], " "))
}

func TestWritePLYBothVariants(t *testing.T) {
	for _, v := range []Variant{Acute, Obtuse} {
		t.Run(v.String(), func(t *testing.T) {
			descs, err := GenerateRhombohedron(v, 1, mgl64.Vec3{1, 2, 3}, testPalette())
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WritePLY(&buf, descs))
			assert.Contains(t, buf.String(), "element vertex 8\n")

			// Triangle indices must stay inside the vertex table.
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			for _, line := range lines[13+8:] {
				var n, a, b, c, r, g, bl int
				_, err := fmt.Sscanf(line, "%d %d %d %d %d %d %d", &n, &a, &b, &c, &r, &g, &bl)
				require.NoError(t, err)
				for _, idx := range []int{a, b, c} {
					assert.GreaterOrEqual(t, idx, 0)
					assert.Less(t, idx, 8)
				}
			}
		})
	}
}

func TestWritePLYEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WritePLY(&buf, nil)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
