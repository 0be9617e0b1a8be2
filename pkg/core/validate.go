package core

import (
	"errors"
	"fmt"
	stdmath "math"
	"sync/atomic"

	"github.com/df07/go-raytracer-core/pkg/math"
)

// ValidationTolerance is the absolute error allowed when checking hit records
const ValidationTolerance = 1e-6

var (
	ErrOutOfRange      = errors.New("hit parameter outside (tMin, tMax)")
	ErrNonFinite       = errors.New("hit record contains NaN or Inf")
	ErrPointMismatch   = errors.New("hit point is not on the ray")
	ErrNonUnitNormal   = errors.New("normal is not unit length")
	ErrFaceOrientation = errors.New("normal orientation disagrees with front face")
)

// ValidateHitRecord checks rec against the invariants every Hittable must
// uphold for the given ray and interval. All violations are returned joined.
func ValidateHitRecord(ray math.Ray, rec *HitRecord, tMin, tMax float64) error {
	if rec == nil {
		return errors.New("nil hit record")
	}

	var errs []error

	if !(rec.T() > tMin && rec.T() < tMax) {
		errs = append(errs, fmt.Errorf("%w: t=%g not in (%g, %g)", ErrOutOfRange, rec.T(), tMin, tMax))
	}

	if stdmath.IsNaN(rec.T()) || !rec.Point().IsFinite() || !rec.Normal().IsFinite() {
		errs = append(errs, fmt.Errorf("%w: t=%g point=%v normal=%v", ErrNonFinite, rec.T(), rec.Point(), rec.Normal()))
		return errors.Join(errs...)
	}

	if d := rec.Point().Subtract(ray.At(rec.T())).Length(); d > ValidationTolerance {
		errs = append(errs, fmt.Errorf("%w: point %v is %g from ray.At(%g)", ErrPointMismatch, rec.Point(), d, rec.T()))
	}

	if l := rec.Normal().Length(); stdmath.Abs(l-1) > ValidationTolerance {
		errs = append(errs, fmt.Errorf("%w: |%v| = %g", ErrNonUnitNormal, rec.Normal(), l))
	}

	// The stored normal always opposes the ray, whichever side was struck
	if ray.Direction.Dot(rec.Normal()) > 0 {
		errs = append(errs, fmt.Errorf("%w: normal %v faces along direction %v (front face %v)",
			ErrFaceOrientation, rec.Normal(), ray.Direction, rec.FrontFace()))
	}

	return errors.Join(errs...)
}

// ValidatingHittable wraps a Hittable and checks every hit it reports.
// Hits are passed through unchanged; violations are logged and counted.
type ValidatingHittable struct {
	inner      Hittable
	logger     Logger
	violations atomic.Int64
}

// NewValidatingHittable wraps inner. A nil logger falls back to the default logger.
func NewValidatingHittable(inner Hittable, logger Logger) *ValidatingHittable {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &ValidatingHittable{inner: inner, logger: logger}
}

// Hit delegates to the wrapped hittable and validates the result
func (v *ValidatingHittable) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	hit, isHit := v.inner.Hit(ray, tMin, tMax)
	if !isHit {
		return hit, isHit
	}

	if err := ValidateHitRecord(ray, hit, tMin, tMax); err != nil {
		v.violations.Add(1)
		v.logger.Printf("Invalid hit record from %T for ray origin=%v direction=%v: %v\n",
			v.inner, ray.Origin, ray.Direction, err)
	}
	return hit, isHit
}

// Violations returns the number of invalid hit records seen so far
func (v *ValidatingHittable) Violations() int64 {
	return v.violations.Load()
}
