package dualquat

import "math"

// DualScalar is a dual number, an element of ℝ[ε]/(ε²) with ε² = 0.
// The dual part rides along through ordinary arithmetic the way a
// derivative does, which is why the norm of a dual quaternion is a
// DualScalar rather than a plain float.
type DualScalar struct {
	Real float32
	Dual float32
}

// Add returns s + rhs.
func (s DualScalar) Add(rhs DualScalar) DualScalar {
	return DualScalar{
		Real: s.Real + rhs.Real,
		Dual: s.Dual + rhs.Dual,
	}
}

// Sub returns s - rhs.
func (s DualScalar) Sub(rhs DualScalar) DualScalar {
	return DualScalar{
		Real: s.Real - rhs.Real,
		Dual: s.Dual - rhs.Dual,
	}
}

// Mul returns the dual-number product of s and rhs; the ε² term vanishes.
func (s DualScalar) Mul(rhs DualScalar) DualScalar {
	return DualScalar{
		Real: s.Real * rhs.Real,
		Dual: s.Real*rhs.Dual + s.Dual*rhs.Real,
	}
}

// Scale returns s with both parts multiplied by c.
func (s DualScalar) Scale(c float32) DualScalar {
	return DualScalar{
		Real: s.Real * c,
		Dual: s.Dual * c,
	}
}

// Sqrt returns the dual-number square root of s. Defined only for a
// non-negative real part; a negative real part yields NaN.
func (s DualScalar) Sqrt() DualScalar {
	realSqrt := float32(math.Sqrt(float64(s.Real)))

	return DualScalar{
		Real: realSqrt,
		Dual: s.Dual / (2 * realSqrt),
	}
}

// InverseSqrt returns the inverse of the square root of s in a single
// reciprocal-sqrt pass, cheaper than s.Sqrt().Inverse(). Defined only
// for a positive, non-zero real part.
func (s DualScalar) InverseSqrt() DualScalar {
	realSqrt := float32(math.Sqrt(float64(s.Real)))

	return DualScalar{
		Real: 1 / realSqrt,
		Dual: -s.Dual / (2 * s.Real * realSqrt),
	}
}

// Inverse returns the dual number such that s.Mul(s.Inverse()) equals
// (1, 0). Defined only for a non-zero real part.
func (s DualScalar) Inverse() DualScalar {
	realInv := 1 / s.Real

	return DualScalar{
		Real: realInv,
		Dual: -s.Dual * realInv * realInv,
	}
}

// MulQuat treats rhs as a quaternion with dual-number coefficients and
// scales it by s. Normalization is built on this product.
func (s DualScalar) MulQuat(rhs DualQuat) DualQuat {
	return DualQuat{
		Real: rhs.Real.Scale(s.Real),
		Dual: rhs.Dual.Scale(s.Real).Add(rhs.Real.Scale(s.Dual)),
	}
}
