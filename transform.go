package voxelprops

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4×4 spatial transformation stored as 16 values in
// row-major order.
type Transform [16]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a×b, the transform that applies b
// first and then a. Chains are folded by repeatedly setting
//
//	running = Mul(next, running)
func Mul(a, b Transform) Transform {
	var m Transform
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4]*b[c] + a[r*4+1]*b[4+c] + a[r*4+2]*b[8+c] + a[r*4+3]*b[12+c]
		}
	}
	return m
}

// RotateX returns a rotation of angle radians about the x axis.
func RotateX(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation of angle radians about the y axis.
func RotateY(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by (x,y,z).
func Translate(x, y, z float64) Transform {
	return Transform{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale returns a uniform scaling by s.
func Scale(s float64) Transform {
	return Transform{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Apply computes the full projective transform of p and divides by
// the resulting w component. Every transform composed from the
// constructors in this package keeps w = 1, but the divide is done
// unconditionally so Apply stays correct for projective matrices
// supplied by callers.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	w := t[12]*p.X + t[13]*p.Y + t[14]*p.Z + t[15]
	return r3.Vec{
		X: (t[0]*p.X + t[1]*p.Y + t[2]*p.Z + t[3]) / w,
		Y: (t[4]*p.X + t[5]*p.Y + t[6]*p.Z + t[7]) / w,
		Z: (t[8]*p.X + t[9]*p.Y + t[10]*p.Z + t[11]) / w,
	}
}
