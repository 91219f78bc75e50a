package dualquat

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// normTolerance is the default unit-norm tolerance, matching the float
// comparison convention of the underlying math library.
const normTolerance = 1e-4

// DualQuat represents a rigid body transformation, a "screw" motion
// combining a translation along a vector with a rotation around that
// vector. Real is the rotor, Dual the translator: q = Real + ε·Dual.
//
// Only a unit dual quaternion (see IsNormalized) encodes a valid
// transform. Operations that assume unitness say so; feeding them a
// non-unit value silently produces a wrong transform rather than an
// error.
type DualQuat struct {
	Real mgl32.Quat
	Dual mgl32.Quat
}

// Ident returns the identity transform. Like multiplying with 1.
func Ident() DualQuat {
	return DualQuat{Real: mgl32.QuatIdent()}
}

// Zero returns the all-zero dual quaternion. Not a valid transform by
// itself; useful as the seed when accumulating a weighted blend.
func Zero() DualQuat {
	return DualQuat{}
}

// pureQuat builds the quaternion (0, v), the embedding of a vector.
func pureQuat(v mgl32.Vec3) mgl32.Quat {
	return mgl32.Quat{W: 0, V: v}
}

// FromRotationTranslation creates the dual quaternion that rotates by
// rotation and then translates by translation. rotation is assumed to
// be unit.
func FromRotationTranslation(rotation mgl32.Quat, translation mgl32.Vec3) DualQuat {
	return DualQuat{
		Real: rotation,
		Dual: pureQuat(translation.Mul(0.5)).Mul(rotation),
	}
}

// FromTranslation creates a pure translation without any rotation.
func FromTranslation(translation mgl32.Vec3) DualQuat {
	return DualQuat{
		Real: mgl32.QuatIdent(),
		Dual: pureQuat(translation.Mul(0.5)),
	}
}

// FromQuat creates a pure rotation without any translation. rotation is
// assumed to be unit.
func FromQuat(rotation mgl32.Quat) DualQuat {
	return DualQuat{Real: rotation}
}

// FromTransform creates a dual quaternion from a Transform pose.
func FromTransform(t Transform) DualQuat {
	return FromRotationTranslation(t.Rotation, t.Position)
}

// Mul composes two transforms. q.Mul(rhs) applies rhs first and then q,
// matching quaternion convention; the order matters.
func (q DualQuat) Mul(rhs DualQuat) DualQuat {
	return DualQuat{
		Real: q.Real.Mul(rhs.Real),
		Dual: q.Real.Mul(rhs.Dual).Add(q.Dual.Mul(rhs.Real)),
	}
}

// Add returns the componentwise sum of q and rhs. Sums of transforms
// are only meaningful as the linear blending step of a weighted
// average; the result is not unit and must be normalized before use.
func (q DualQuat) Add(rhs DualQuat) DualQuat {
	return DualQuat{
		Real: q.Real.Add(rhs.Real),
		Dual: q.Dual.Add(rhs.Dual),
	}
}

// Sub returns the componentwise difference of q and rhs.
func (q DualQuat) Sub(rhs DualQuat) DualQuat {
	return DualQuat{
		Real: q.Real.Sub(rhs.Real),
		Dual: q.Dual.Sub(rhs.Dual),
	}
}

// Scale returns q with every component multiplied by c.
func (q DualQuat) Scale(c float32) DualQuat {
	return DualQuat{
		Real: q.Real.Scale(c),
		Dual: q.Dual.Scale(c),
	}
}

// RightMulTranslation is an optimized form of
// q.Mul(FromTranslation(translation)), note the operand order. It
// updates the four dual components in closed form instead of running a
// full quaternion multiply.
func (q DualQuat) RightMulTranslation(translation mgl32.Vec3) DualQuat {
	tx, ty, tz := translation.X(), translation.Y(), translation.Z()
	rx, ry, rz, rw := q.Real.X(), q.Real.Y(), q.Real.Z(), q.Real.W

	q.Dual.W -= 0.5 * (rx*tx + ry*ty + rz*tz)
	q.Dual.V[0] += 0.5 * (rw*tx + ry*tz - rz*ty)
	q.Dual.V[1] += 0.5 * (rw*ty + rz*tx - rx*tz)
	q.Dual.V[2] += 0.5 * (rw*tz + rx*ty - ry*tx)

	return q
}

// NormSquared returns the norm squared of q as a dual number: the
// squared length of the real part, and twice the 4-vector dot product
// of the real and dual parts. q is unit when the result is (1, 0).
func (q DualQuat) NormSquared() DualScalar {
	return DualScalar{
		Real: q.Real.Dot(q.Real),
		Dual: 2 * q.Real.Dot(q.Dual),
	}
}

// Norm returns the norm of q as a dual number. Requires a non-zero real
// part.
func (q DualQuat) Norm() DualScalar {
	realLen := q.Real.Len()

	return DualScalar{
		Real: realLen,
		Dual: q.Real.Dot(q.Dual) / realLen,
	}
}

// IsNormalized reports whether q is a unit dual quaternion within the
// default tolerance.
func (q DualQuat) IsNormalized() bool {
	return q.IsNormalizedThreshold(normTolerance)
}

// IsNormalizedThreshold reports whether q is a unit dual quaternion:
// the real part has length one and is orthogonal to the dual part as a
// 4-vector, both within epsilon.
func (q DualQuat) IsNormalizedThreshold(epsilon float32) bool {
	normSq := q.NormSquared()

	return mgl32.Abs(normSq.Real-1) < epsilon && mgl32.Abs(normSq.Dual) < epsilon
}

// Normalize returns q scaled to a unit dual quaternion. The norm and
// its dual-number inverse are fused into a single reciprocal:
//
//	norm       = (|real|, (real·dual)/|real|)
//	normalizer = (1/|real|, -(real·dual)/(|real|·|real|²))
//
// which saves a division over computing Norm then Inverse separately
// (Kavan et al., "Skinning with Dual Quaternions", 2007, section 3.4).
// The result satisfies IsNormalized whenever the real part is non-zero.
//
// If the result is only needed decomposed, use
// NormalizeToRotationTranslation instead.
func (q DualQuat) Normalize() DualQuat {
	realNormSq := q.Real.Dot(q.Real)
	realNorm := float32(math.Sqrt(float64(realNormSq)))
	dot := q.Real.Dot(q.Dual)

	normalizer := DualScalar{
		Real: 1 / realNorm,
		Dual: -dot / (realNorm * realNormSq),
	}

	return normalizer.MulQuat(q)
}

// ToRotationTranslation returns q decomposed into (rotation,
// translation). Assumes q is already unit; if it may have drifted, use
// NormalizeToRotationTranslation.
//
// Apply the result to a point with rotation.Rotate(point).Add(translation).
func (q DualQuat) ToRotationTranslation() (mgl32.Quat, mgl32.Vec3) {
	translation := q.Dual.Mul(q.Real.Conjugate()).V.Mul(2)

	return q.Real, translation
}

// NormalizeToRotationTranslation normalizes q and decomposes it into
// (rotation, translation) in one pass. Rescaling both parts by the
// reciprocal length of the real part alone is sufficient: the residual
// real·dual term cancels out of the translation formula (Kavan et al.
// 2007, equation 4 and section 3.4), so the full normalizer is never
// materialized.
func (q DualQuat) NormalizeToRotationTranslation() (mgl32.Quat, mgl32.Vec3) {
	realNormInv := 1 / q.Real.Len()

	q.Real = q.Real.Scale(realNormInv)
	q.Dual = q.Dual.Scale(realNormInv)

	return q.ToRotationTranslation()
}

// Conjugate returns the quaternion conjugate of q: given
// q = real + ε·dual, q* = real* + ε·dual*. While q is unit this is also
// its inverse.
func (q DualQuat) Conjugate() DualQuat {
	return DualQuat{
		Real: q.Real.Conjugate(),
		Dual: q.Dual.Conjugate(),
	}
}

// Inverse returns the transform undoing q, such that q.Mul(q.Inverse())
// is the identity. Only valid while q is unit; under the dqvalidate
// build tag a non-unit receiver panics, otherwise the result is
// silently wrong.
func (q DualQuat) Inverse() DualQuat {
	assertNormalized(q)

	return q.Conjugate()
}

// ApproxEqualThreshold reports whether every component of q is within
// an absolute difference of epsilon from the matching component of
// other, on both quaternion parts. An absolute comparison is the right
// relation here: inverse and normalization residuals cluster around
// zero, where a relative comparison degenerates.
func (q DualQuat) ApproxEqualThreshold(other DualQuat, epsilon float32) bool {
	return quatAbsDiffEq(q.Real, other.Real, epsilon) &&
		quatAbsDiffEq(q.Dual, other.Dual, epsilon)
}

func quatAbsDiffEq(a, b mgl32.Quat, epsilon float32) bool {
	return mgl32.Abs(a.W-b.W) < epsilon &&
		mgl32.Abs(a.V.X()-b.V.X()) < epsilon &&
		mgl32.Abs(a.V.Y()-b.V.Y()) < epsilon &&
		mgl32.Abs(a.V.Z()-b.V.Z()) < epsilon
}

// TransformPoint applies q to a point. Assumes q is unit.
func (q DualQuat) TransformPoint(point mgl32.Vec3) mgl32.Vec3 {
	rotation, translation := q.ToRotationTranslation()

	return rotation.Rotate(point).Add(translation)
}

// Mat4 returns the homogeneous matrix form of q. Assumes q is unit.
func (q DualQuat) Mat4() mgl32.Mat4 {
	rotation, translation := q.ToRotationTranslation()

	m := rotation.Mat4()
	m.SetCol(3, translation.Vec4(1))

	return m
}
