package dualquat

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBlend_SingleEntry(t *testing.T) {
	q := FromRotationTranslation(
		mgl32.QuatRotate(0.8, mgl32.Vec3{0, 1, 0}),
		mgl32.Vec3{1, 2, 3},
	)

	got := Blend([]DualQuat{q}, []float32{1})
	if !got.ApproxEqualThreshold(q, 1e-6) {
		t.Errorf("Blend of single transform = %+v, want the transform itself", got)
	}

	// A non-unit weight must wash out in the renormalization
	got = Blend([]DualQuat{q}, []float32{0.3})
	if !got.ApproxEqualThreshold(q, 1e-5) {
		t.Errorf("Blend with weight 0.3 = %+v, want the transform itself", got)
	}
}

func TestBlend_HalfwayTranslation(t *testing.T) {
	rest := Ident()
	shifted := FromTranslation(mgl32.Vec3{2, 0, 0})

	got := Blend([]DualQuat{rest, shifted}, []float32{0.5, 0.5})

	rotation, translation := got.ToRotationTranslation()
	if !quatAlmostEqual(rotation, mgl32.QuatIdent(), 1e-6) {
		t.Errorf("rotation = %+v, want identity", rotation)
	}
	if !vec3AlmostEqual(translation, mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("translation = %v, want [1 0 0]", translation)
	}
}

func TestBlend_ResultIsUnit(t *testing.T) {
	bones := []DualQuat{
		FromRotationTranslation(
			mgl32.QuatRotate(0.3, mgl32.Vec3{1, 0, 0}),
			mgl32.Vec3{0, 1, 0},
		),
		FromRotationTranslation(
			mgl32.QuatRotate(-1.2, mgl32.Vec3{0, 1, 0}),
			mgl32.Vec3{2, 0, 1},
		),
		FromRotationTranslation(
			mgl32.QuatRotate(2.1, mgl32.Vec3{1, 1, 1}.Normalize()),
			mgl32.Vec3{-1, -1, 0},
		),
	}
	weights := []float32{0.2, 0.5, 0.3}

	got := Blend(bones, weights)
	if !got.IsNormalized() {
		t.Errorf("blended transform not unit: norm² = %+v", got.NormSquared())
	}
}

func TestBlend_AntipodalEncodings(t *testing.T) {
	q := FromRotationTranslation(
		mgl32.QuatRotate(1.5, mgl32.Vec3{0, 0, 1}),
		mgl32.Vec3{0, 3, 0},
	)
	// -q encodes the exact same rigid transform on the other hemisphere
	negated := q.Scale(-1)

	got := Blend([]DualQuat{q, negated}, []float32{0.5, 0.5})

	if !got.IsNormalized() {
		t.Fatalf("antipodal blend collapsed: %+v", got)
	}

	// The blend must act like q, not like a cancelled-out average
	points := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0.5, -2, 4},
	}
	for _, p := range points {
		want := q.TransformPoint(p)
		if !vec3AlmostEqual(got.TransformPoint(p), want, 1e-5) {
			t.Errorf("blended point %v = %v, want %v", p, got.TransformPoint(p), want)
		}
	}
}

func TestBlend_InterpolatesBetweenBones(t *testing.T) {
	rest := Ident()
	bent := FromRotationTranslation(
		mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1}),
		mgl32.Vec3{0, 1, 0},
	)
	vertex := mgl32.Vec3{1, 0, 0}

	atRest := Blend([]DualQuat{rest, bent}, []float32{1, 0}).TransformPoint(vertex)
	if !vec3AlmostEqual(atRest, vertex, 1e-6) {
		t.Errorf("weight (1, 0) moved the vertex to %v", atRest)
	}

	fullyBent := Blend([]DualQuat{rest, bent}, []float32{0, 1}).TransformPoint(vertex)
	if !vec3AlmostEqual(fullyBent, bent.TransformPoint(vertex), 1e-6) {
		t.Errorf("weight (0, 1) = %v, want the bent pose %v", fullyBent, bent.TransformPoint(vertex))
	}

	// Halfway must land strictly between the two poses
	halfway := Blend([]DualQuat{rest, bent}, []float32{0.5, 0.5}).TransformPoint(vertex)
	if vec3AlmostEqual(halfway, atRest, 1e-3) || vec3AlmostEqual(halfway, fullyBent, 1e-3) {
		t.Errorf("halfway blend %v stuck to an endpoint", halfway)
	}
}

func TestBlend_MismatchedInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Blend with mismatched weights should panic")
		}
	}()

	Blend([]DualQuat{Ident()}, []float32{0.5, 0.5})
}

func TestBlend_EmptyInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Blend with no transforms should panic")
		}
	}()

	Blend(nil, nil)
}
