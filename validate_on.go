//go:build dqvalidate

package dualquat

import "fmt"

// assertNormalized panics when q has drifted off unit norm. Build with
// -tags dqvalidate during development to catch inverses of non-unit
// dual quaternions at the call site instead of as a silently wrong
// transform downstream.
func assertNormalized(q DualQuat) {
	if !q.IsNormalized() {
		panic(fmt.Sprintf("dualquat: inverse of non-unit dual quaternion (norm² = %+v)", q.NormSquared()))
	}
}
