// Package linalg is the small fixed-size vector/matrix library used by the
// renderer. Vectors and matrices are plain float32 arrays so they can be
// indexed by ordinal and copied into GPU buffers without conversion.
package linalg

import "github.com/chewxy/math32"

// Vector2 is an (x, y) pair. v[0] is x.
type Vector2 [2]float32

// Vector3 is an (x, y, z) triple.
type Vector3 [3]float32

// Vector4 is an (x, y, z, w) tuple, typically a homogeneous point.
type Vector4 [4]float32

func Vec2(x, y float32) Vector2       { return Vector2{x, y} }
func Vec3(x, y, z float32) Vector3    { return Vector3{x, y, z} }
func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

// ---- Vector2 ----

func (v Vector2) X() float32 { return v[0] }
func (v Vector2) Y() float32 { return v[1] }

func (v Vector2) Neg() Vector2            { return Vector2{-v[0], -v[1]} }
func (v Vector2) Add(o Vector2) Vector2   { return Vector2{v[0] + o[0], v[1] + o[1]} }
func (v Vector2) Sub(o Vector2) Vector2   { return Vector2{v[0] - o[0], v[1] - o[1]} }
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v[0] * s, v[1] * s} }
func (v Vector2) Div(s float32) Vector2   { return Vector2{v[0] / s, v[1] / s} }
func (v Vector2) Dot(o Vector2) float32   { return v[0]*o[0] + v[1]*o[1] }
func (v Vector2) Len() float32            { return math32.Sqrt(v.Dot(v)) }

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool { return v[0] == 0 && v[1] == 0 }

// ---- Vector3 ----

func (v Vector3) X() float32 { return v[0] }
func (v Vector3) Y() float32 { return v[1] }
func (v Vector3) Z() float32 { return v[2] }

func (v Vector3) Neg() Vector3 { return Vector3{-v[0], -v[1], -v[2]} }
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vector3) Dot(o Vector3) float32   { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }
func (v Vector3) Len() float32            { return math32.Sqrt(v.Dot(v)) }

// ---- Vector4 ----

func (v Vector4) X() float32 { return v[0] }
func (v Vector4) Y() float32 { return v[1] }
func (v Vector4) Z() float32 { return v[2] }
func (v Vector4) W() float32 { return v[3] }

func (v Vector4) Neg() Vector4 { return Vector4{-v[0], -v[1], -v[2], -v[3]} }
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}
func (v Vector4) Div(s float32) Vector4 {
	return Vector4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}
func (v Vector4) Dot(o Vector4) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}
func (v Vector4) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// MulMat treats v as a row vector: result[c] = sum_i v[i]*m[i][c].
func (v Vector4) MulMat(m Matrix4) Vector4 {
	var out Vector4
	for c := 0; c < 4; c++ {
		var dot float32
		for i := 0; i < 4; i++ {
			dot += v[i] * m[i*4+c]
		}
		out[c] = dot
	}
	return out
}

// Color4 is an RGBA colour with channels in [0, 1].
type Color4 [4]float32

func RGBA(r, g, b, a float32) Color4 { return Color4{r, g, b, a} }

func (c Color4) R() float32 { return c[0] }
func (c Color4) G() float32 { return c[1] }
func (c Color4) B() float32 { return c[2] }
func (c Color4) A() float32 { return c[3] }

func (c Color4) WithAlpha(a float32) Color4 {
	c[3] = a
	return c
}
