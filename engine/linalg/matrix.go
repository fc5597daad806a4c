package linalg

import "github.com/chewxy/math32"

// Matrices are row-major: element (r, c) of an NxN matrix lives at r*N+c.
// Vectors multiplied on the right (Matrix4.MulVec) are column vectors, so
// transforms compose right to left: T.Mul(R).Mul(S) scales first.

// Matrix2 is a row-major 2x2 matrix.
type Matrix2 [4]float32

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [9]float32

// Matrix4 is a row-major 4x4 matrix.
type Matrix4 [16]float32

func Identity2() Matrix2 { return Matrix2{1, 0, 0, 1} }

func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale2 is a uniform 2D scale.
func Scale2(s float32) Matrix2 { return ScaleXY2(s, s) }

func ScaleXY2(sx, sy float32) Matrix2 {
	return Matrix2{
		sx, 0,
		0, sy,
	}
}

// Rotate2 is a counter-clockwise rotation by rad.
func Rotate2(rad float32) Matrix2 {
	return Rotate2CS(math32.Cos(rad), math32.Sin(rad))
}

// Rotate2CS builds a rotation from a precomputed cosine and sine.
func Rotate2CS(cos, sin float32) Matrix2 {
	return Matrix2{
		cos, -sin,
		sin, cos,
	}
}

// Translate4 is a homogeneous translation in the XY plane.
func Translate4(x, y float32) Matrix4 {
	return Matrix4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate4V(p Vector2) Matrix4 { return Translate4(p[0], p[1]) }

// Matrix3FromMatrix2 embeds m in the top-left block; the rest is identity.
func Matrix3FromMatrix2(m Matrix2) Matrix3 {
	return Matrix3{
		m[0], m[1], 0,
		m[2], m[3], 0,
		0, 0, 1,
	}
}

// Matrix4FromMatrix2 embeds m in the top-left block; the rest is identity.
func Matrix4FromMatrix2(m Matrix2) Matrix4 {
	return Matrix4{
		m[0], m[1], 0, 0,
		m[2], m[3], 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 embeds m in the top-left block; the rest is identity.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

func (m Matrix2) At(r, c int) float32 { return m[r*2+c] }
func (m Matrix3) At(r, c int) float32 { return m[r*3+c] }
func (m Matrix4) At(r, c int) float32 { return m[r*4+c] }

// Row returns row r.
func (m Matrix2) Row(r int) Vector2 { return Vector2{m[r*2], m[r*2+1]} }
func (m Matrix3) Row(r int) Vector3 { return Vector3{m[r*3], m[r*3+1], m[r*3+2]} }
func (m Matrix4) Row(r int) Vector4 {
	return Vector4{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

func (m Matrix2) Mul(o Matrix2) Matrix2 {
	var out Matrix2
	mulSquare(out[:], m[:], o[:], 2)
	return out
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	mulSquare(out[:], m[:], o[:], 3)
	return out
}

func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	mulSquare(out[:], m[:], o[:], 4)
	return out
}

// MulVec treats v as a column vector: result[r] = sum_i m[r][i]*v[i].
func (m Matrix2) MulVec(v Vector2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

// MulVec treats v as a column vector: result[r] = sum_i m[r][i]*v[i].
func (m Matrix4) MulVec(v Vector4) Vector4 {
	var out Vector4
	for r := 0; r < 4; r++ {
		var dot float32
		for i := 0; i < 4; i++ {
			dot += m[r*4+i] * v[i]
		}
		out[r] = dot
	}
	return out
}

// Transpose swaps rows and columns; useful when handing the matrix to a
// column-major consumer.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

func mulSquare(out, a, b []float32, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var dot float32
			for i := 0; i < n; i++ {
				dot += a[r*n+i] * b[i*n+c]
			}
			out[r*n+c] = dot
		}
	}
}
