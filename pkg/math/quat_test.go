package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/num/quat"
)

func approxQuat(a, b Quat, tol float32) bool {
	return math32.Abs(a.W-b.W) <= tol && math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol && math32.Abs(a.Z-b.Z) <= tol
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q != NewQuat(1, 0, 0, 0) {
		t.Errorf("Identity quaternion should be (1,0,0,0), got %+v", q)
	}
}

func TestQuatMulIdentity(t *testing.T) {
	for _, q := range []Quat{
		NewQuat(0.5, 0.5, 0.5, 0.5),
		NewQuat(1, 2, 3, 4),
		QuatFromAxisAngle(Vec3{0, 0, 1}, 1.2),
	} {
		if got := q.Mul(QuatIdentity()); got != q {
			t.Errorf("q * identity = %+v, want %+v", got, q)
		}
		if got := QuatIdentity().Mul(q); got != q {
			t.Errorf("identity * q = %+v, want %+v", got, q)
		}
	}
}

func TestQuatMulNotCommutative(t *testing.T) {
	p := QuatFromAxisAngle(Vec3{1, 0, 0}, math32.Pi/2)
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	if approxQuat(p.Mul(q), q.Mul(p), 1e-4) {
		t.Errorf("p*q should differ from q*p, both %+v", p.Mul(q))
	}
}

func TestQuatMulAssociative(t *testing.T) {
	p := QuatFromAxisAngle(Vec3{1, 0, 0}, 0.3)
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, -1.1)
	r := QuatFromAxisAngle(Vec3{0, 0.6, 0.8}, 2.5)

	left := p.Mul(q).Mul(r)
	right := p.Mul(q.Mul(r))
	if !approxQuat(left, right, 1e-5) {
		t.Errorf("(pq)r = %+v, p(qr) = %+v", left, right)
	}
}

func TestQuatMulMatchesOracles(t *testing.T) {
	p := NewQuat(0.3, -1.2, 0.7, 2)
	q := NewQuat(-0.5, 0.25, 1.5, -0.75)
	got := p.Mul(q)

	g := quat.Mul(
		quat.Number{Real: float64(p.W), Imag: float64(p.X), Jmag: float64(p.Y), Kmag: float64(p.Z)},
		quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)},
	)
	fromGonum := NewQuat(float32(g.Real), float32(g.Imag), float32(g.Jmag), float32(g.Kmag))
	if !approxQuat(got, fromGonum, 1e-5) {
		t.Errorf("Mul = %+v, gonum = %+v", got, fromGonum)
	}

	m := mgl32.Quat{W: p.W, V: mgl32.Vec3{p.X, p.Y, p.Z}}.Mul(mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}})
	fromMGL := NewQuat(m.W, m.V[0], m.V[1], m.V[2])
	if !approxQuat(got, fromMGL, 1e-5) {
		t.Errorf("Mul = %+v, mgl32 = %+v", got, fromMGL)
	}
}

func TestQuatEulerAngles(t *testing.T) {
	tests := []struct {
		name         string
		q            Quat
		phi, th, psi float32
	}{
		{"identity", QuatIdentity(), 0, 0, 0},
		{"roll", QuatFromAxisAngle(Vec3{1, 0, 0}, 0.4), 0.4, 0, 0},
		{"pitch", QuatFromAxisAngle(Vec3{0, 1, 0}, -0.7), 0, -0.7, 0},
		{"yaw", QuatFromAxisAngle(Vec3{0, 0, 1}, 2.1), 0, 0, 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phi, th, psi := tt.q.EulerAngles()
			if math32.Abs(phi-tt.phi) > 1e-4 || math32.Abs(th-tt.th) > 1e-4 || math32.Abs(psi-tt.psi) > 1e-4 {
				t.Errorf("EulerAngles() = (%v, %v, %v), want (%v, %v, %v)", phi, th, psi, tt.phi, tt.th, tt.psi)
			}
		})
	}
}

func TestQuatEulerAnglesGimbalDrift(t *testing.T) {
	// Slightly over unit length pushes the pitch term past 1
	s := math32.Sqrt(0.5) * 1.0001
	q := NewQuat(s, 0, s, 0)

	_, theta, _ := q.EulerAngles()
	if math32.IsNaN(theta) {
		t.Fatal("pitch should be clamped, got NaN")
	}
	if !approx(theta, math32.Pi/2) {
		t.Errorf("pitch = %v, want π/2", theta)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{W: 4, X: 1, Y: 2, Z: 3}
	n := q.Normalize()

	if l := n.Length(); math32.Abs(l-1) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", l)
	}
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion Normalize() = %+v, want identity", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math32.Pi/2)

	expected := math32.Sqrt(0.5)
	if math32.Abs(q.W-expected) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expected, q.W)
	}
	if math32.Abs(q.Y-expected) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expected, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	if !approxVec3(got, Vec3{0, 0, -1}) {
		t.Errorf("Rotate 90° about Y: got %v, want (0, 0, -1)", got)
	}

	// Rotating by q then by its conjugate is a no-op
	v := Vec3{0.3, -2, 5}
	r := QuatFromAxisAngle(Vec3{0, 0.6, 0.8}, 1.3)
	if back := r.Conjugate().Rotate(r.Rotate(v)); math32.Abs(back.Distance(v)) > 1e-4 {
		t.Errorf("conjugate rotation should undo rotation, got %v want %v", back, v)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math32.Pi/2)

	if r := q1.Slerp(q2, 0); !approxQuat(r, q1, 1e-3) {
		t.Errorf("Slerp at t=0 should equal q1, got %+v", r)
	}
	if r := q1.Slerp(q2, 1); !approxQuat(r, q2, 1e-3) {
		t.Errorf("Slerp at t=1 should equal q2, got %+v", r)
	}

	// For a 90 degree rotation, halfway is 45 degrees
	r := q1.Slerp(q2, 0.5)
	expectedW := math32.Cos(math32.Pi / 8)
	if math32.Abs(r.W-expectedW) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, r.W)
	}
}
