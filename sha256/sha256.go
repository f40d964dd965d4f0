package sha256

import (
	"hash"

	"github.com/klauspost/cpuid/v2"
	"github.com/minio/sha256-simd"
)

// Size is the length of a digest in bytes.
const Size = sha256.Size

// Sum returns the digest of b.
func Sum(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// Sum256 returns the digest of b as an array.
func Sum256(b []byte) [Size]byte { return sha256.Sum256(b) }

// New returns a streaming digest.
func New() hash.Hash { return sha256.New() }

// Accelerated reports whether the CPU has the SHA instructions sha256-simd
// uses in place of the generic block function.
func Accelerated() bool {
	return cpuid.CPU.Supports(cpuid.SHA, cpuid.SSSE3, cpuid.SSE4) ||
		cpuid.CPU.Supports(cpuid.ASIMD, cpuid.SHA2)
}
