// Package dualquat implements dual numbers and dual quaternions for
// composing, blending and decomposing 3D rigid transforms, built on the
// mgl32 quaternion and vector types.
//
// A unit dual quaternion encodes a rotation plus a translation in eight
// floats and, unlike a matrix, stays on the rigid-motion group under
// blending followed by renormalization. That makes it the representation
// of choice for skinning, where several bone transforms are averaged per
// vertex.
//
// References:
//   - https://users.cs.utah.edu/~ladislav/kavan07skinning/kavan07skinning.pdf
//   - https://faculty.sites.iastate.edu/jia/files/inline-files/dual-quaternion.pdf
//   - http://wscg.zcu.cz/wscg2012/short/a29-full.pdf
package dualquat
