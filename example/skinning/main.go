package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/dualquat"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	// Two bone poses for one vertex: the rest pose and an elbow bent 90°
	// around Z, lifted one unit up.
	rest := dualquat.Ident()
	bent := dualquat.FromRotationTranslation(
		mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}),
		mgl32.Vec3{0, 1, 0},
	)

	vertex := mgl32.Vec3{1, 0, 0}

	fmt.Printf("skinning vertex %v across blend weights:\n", vertex)
	for _, w := range []float32{0, 0.25, 0.5, 0.75, 1} {
		skin := dualquat.Blend(
			[]dualquat.DualQuat{rest, bent},
			[]float32{1 - w, w},
		)
		fmt.Printf("  w=%.2f -> %v\n", w, skin.TransformPoint(vertex))
	}

	// Composition: turn 90° around Y, then step forward. The right
	// operand of Mul is applied first.
	turn := dualquat.FromQuat(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}))
	step := dualquat.FromTranslation(mgl32.Vec3{0, 0, -1})
	pose := step.Mul(turn)

	rotation, translation := pose.NormalizeToRotationTranslation()
	fmt.Printf("turn then step: rotation=%v translation=%v\n", rotation, translation)

	// Repeated composition drifts off unit norm in float32; check and
	// renormalize before decomposing.
	drifted := dualquat.Ident()
	for i := 0; i < 10000; i++ {
		drifted = drifted.Mul(pose)
	}
	fmt.Printf("after 10000 compositions: normalized=%v norm²=%+v\n",
		drifted.IsNormalized(), drifted.NormSquared())
	fmt.Printf("recovered pose: %+v\n", drifted.Normalize().ToTransform())
}
