package render

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"

	"github.com/MushroomFleet/voxelprops"
)

// Binary STL export of voxel meshes, mostly useful for inspecting
// generated surfaces in external viewers.

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the 50-byte triangle record within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

// WriteSTL writes the mesh to w in binary STL format.
func WriteSTL(w io.Writer, m *voxelprops.Mesh) error {
	if m == nil || len(m.Triangles) == 0 {
		return errors.New("empty mesh")
	}
	header := stlHeader{Count: uint32(len(m.Triangles))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var b [50]byte
	var d stlTriangle
	for _, t := range m.Triangles {
		v1 := m.Vertices[t[0]]
		v2 := m.Vertices[t[1]]
		v3 := m.Vertices[t[2]]
		d.Vertex1 = [3]float32{float32(v1.X), float32(v1.Y), float32(v1.Z)}
		d.Vertex2 = [3]float32{float32(v2.X), float32(v2.Y), float32(v2.Z)}
		d.Vertex3 = [3]float32{float32(v3.X), float32(v3.Y), float32(v3.Z)}
		d.Normal = normal3F32(d.Vertex1, d.Vertex2, d.Vertex3)
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL writes the mesh to a new binary STL file at path.
func CreateSTL(path string, m *voxelprops.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (t stlTriangle) put(b []byte) {
	if len(b) < 50 {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

// normal3F32 is the unit right-hand-rule normal of the triangle, or
// the zero vector for degenerate triangles.
func normal3F32(v1, v2, v3 [3]float32) [3]float32 {
	e1 := [3]float32{v2[0] - v1[0], v2[1] - v1[1], v2[2] - v1[2]}
	e2 := [3]float32{v3[0] - v1[0], v3[1] - v1[1], v3[2] - v1[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	mag := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if mag == 0 {
		return [3]float32{}
	}
	return [3]float32{n[0] / mag, n[1] / mag, n[2] / mag}
}
