package dualquat

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Size is the in-memory and wire size of a DualQuat in bytes: eight
// float32 components with no padding, real part first. Callers packing
// batches for the GPU must allocate the backing storage 16-byte aligned
// themselves; Go only guarantees float32 alignment.
const Size = 32

var _ [Size]byte = [unsafe.Sizeof(DualQuat{})]byte{}

// MarshalBinary encodes q as Size little-endian bytes: the real
// quaternion followed by the dual, each as w, x, y, z.
func (q DualQuat) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, Size)
	for _, c := range q.components() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
	}

	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. The input
// must be exactly Size bytes.
func (q *DualQuat) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("dualquat: invalid encoding length %d, want %d", len(data), Size)
	}

	var c [8]float32
	for i := range c {
		c[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}

	q.Real = mgl32.Quat{W: c[0], V: mgl32.Vec3{c[1], c[2], c[3]}}
	q.Dual = mgl32.Quat{W: c[4], V: mgl32.Vec3{c[5], c[6], c[7]}}

	return nil
}

func (q DualQuat) components() [8]float32 {
	return [8]float32{
		q.Real.W, q.Real.X(), q.Real.Y(), q.Real.Z(),
		q.Dual.W, q.Dual.X(), q.Dual.Y(), q.Dual.Z(),
	}
}
