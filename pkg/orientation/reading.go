package orientation

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orient3d/pkg/math"
)

// Reading is one device orientation sample, in degrees.
type Reading struct {
	Alpha  float32 `json:"alpha" yaml:"alpha"`
	Beta   float32 `json:"beta" yaml:"beta"`
	Gamma  float32 `json:"gamma" yaml:"gamma"`
	Screen float32 `json:"screen" yaml:"screen"`
}

// Valid reports whether the sensor supplied all three angles.
func (r Reading) Valid() bool {
	return !math32.IsNaN(r.Alpha) && !math32.IsNaN(r.Beta) && !math32.IsNaN(r.Gamma)
}

// Quat returns the scene rotation for r.
func (r Reading) Quat() math.Quat {
	return ToQuat(r.Alpha, r.Beta, r.Gamma, r.Screen)
}

// Smoother low-pass filters a stream of readings by slerping towards each
// new sample. It is not safe for concurrent use.
type Smoother struct {
	factor  float32
	current math.Quat
	primed  bool
}

// NewSmoother creates a smoother. factor is the weight of each new sample,
// clamped to [0.01, 1]; 1 disables smoothing.
func NewSmoother(factor float32) *Smoother {
	return &Smoother{factor: math.Clamp(factor, 0.01, 1)}
}

// Update feeds a reading and returns the filtered rotation. Readings with
// missing angles are ignored.
func (s *Smoother) Update(r Reading) math.Quat {
	if !r.Valid() {
		if !s.primed {
			return math.QuatIdentity()
		}
		return s.current
	}

	q := r.Quat()
	if !s.primed {
		s.current = q
		s.primed = true
		return q
	}
	s.current = s.current.Slerp(q, s.factor)
	return s.current
}

// Current returns the last filtered rotation, or identity before the first
// valid reading.
func (s *Smoother) Current() math.Quat {
	if !s.primed {
		return math.QuatIdentity()
	}
	return s.current
}

// Reset forgets the filter state.
func (s *Smoother) Reset() {
	s.current = math.Quat{}
	s.primed = false
}
