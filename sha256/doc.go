// Package sha256 is the SHA-256 digest taken from github.com/minio/sha256-simd,
// which uses the SHA extensions or AVX where the CPU has them and falls back
// to the standard library otherwise.
package sha256
