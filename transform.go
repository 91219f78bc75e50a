package dualquat

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
	}
}

// ToTransform returns q decomposed into a Transform pose. Assumes q is
// unit, like ToRotationTranslation.
func (q DualQuat) ToTransform() Transform {
	rotation, translation := q.ToRotationTranslation()

	return Transform{
		Position: translation,
		Rotation: rotation,
	}
}
