package dualquat

// Blend computes the weighted average of a set of unit transforms, the
// linear blending step of dual quaternion skinning. Each entry is
// hemisphere-aligned against the first one (its weight is negated when
// the real parts point into opposite hemispheres), so the two antipodal
// encodings of the same rotation reinforce instead of cancelling. The
// accumulated sum is normalized before it is returned.
//
// Blend panics when transforms is empty or the slice lengths differ.
func Blend(transforms []DualQuat, weights []float32) DualQuat {
	if len(transforms) == 0 || len(transforms) != len(weights) {
		panic("dualquat: Blend requires one weight per transform")
	}

	pivot := transforms[0].Real
	sum := Zero()

	for i, t := range transforms {
		w := weights[i]
		if pivot.Dot(t.Real) < 0 {
			w = -w
		}

		sum = sum.Add(t.Scale(w))
	}

	return sum.Normalize()
}
