//go:build !dqvalidate

package dualquat

// assertNormalized is compiled out unless the dqvalidate build tag is
// set; see validate_on.go.
func assertNormalized(DualQuat) {}
