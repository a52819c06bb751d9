package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 homogeneous matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// The zero value is the zero matrix. The builder methods overwrite every
// element, so one Mat4 can be reused frame after frame.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// LookAtMatrix returns a new view matrix. See Mat4.LookAt.
func LookAtMatrix(eye, target, up Vec3) Mat4 {
	var m Mat4
	m.LookAt(eye, target, up)
	return m
}

// PerspectiveMatrix returns a new projection matrix. See Mat4.Perspective.
func PerspectiveMatrix(fovYDeg, aspect, near, far float32) Mat4 {
	var m Mat4
	m.Perspective(fovYDeg, aspect, near, far)
	return m
}

// Reset zeroes every element.
func (m *Mat4) Reset() {
	*m = Mat4{}
}

// SetIdentity overwrites m with the identity matrix.
func (m *Mat4) SetIdentity() {
	m.Reset()
	for i := 0; i < 4; i++ {
		m[5*i] = 1
	}
}

// LookAt overwrites m with a right-handed view matrix looking from eye to
// target. If eye and target coincide m becomes the identity. An up vector
// parallel to the view direction is not corrected and leaves a degenerate
// basis.
func (m *Mat4) LookAt(eye, target, up Vec3) {
	if eye.Sub(target).LengthSquared() == 0 {
		m.SetIdentity()
		return
	}

	f := target.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f).Normalize()

	*m = Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Perspective overwrites m with a right-handed perspective projection.
// fovYDeg is the vertical field of view in degrees, aspect is width/height.
// Arguments are not validated; near <= 0, far == near or aspect == 0 give
// infinities or NaNs.
func (m *Mat4) Perspective(fovYDeg, aspect, near, far float32) {
	m.Reset()

	f := 1 / math32.Tan(fovYDeg*math32.Pi/360)
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
}

// Data returns the 16 elements in column-major order. The slice aliases m.
func (m *Mat4) Data() []float32 {
	return m[:]
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// RowMajor returns m transposed into an x/image matrix, which stores rows.
func (m Mat4) RowMajor() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	v := m.MulVec4(Vec4{p[0], p[1], p[2], 1})
	if v[3] != 0 && v[3] != 1 {
		return [3]float32{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return [3]float32{v[0], v[1], v[2]}
}

// TransformVec3 transforms a Vec3 point by this matrix.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	p := m.TransformPoint([3]float32{v.X, v.Y, v.Z})
	return Vec3{p[0], p[1], p[2]}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	v := m.MulVec4(Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}
