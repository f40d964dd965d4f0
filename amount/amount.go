// Package amount reads the 8 byte big-endian coin amounts, in mojos, that a
// Chia full node database stores as blobs.
package amount

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Len is the size of a stored amount.
const Len = 8

// MojoPerXCH is the number of mojos in one XCH.
const MojoPerXCH = 1_000_000_000_000

// ErrOverflow is returned by Int when the amount does not fit a signed 64 bit
// integer, which is all an SQL INTEGER can hold.
var ErrOverflow = errors.New("amount exceeds the signed 64 bit range")

// ErrLength is returned when the blob is not exactly Len bytes.
type ErrLength int

func (err ErrLength) Error() string {
	return fmt.Sprintf("amount is %d bytes, must be %d", int(err), Len)
}

// Mojos reads an amount. Amounts are unsigned, so every 8 byte value is valid.
func Mojos(b []byte) (n uint64, err error) {
	if len(b) != Len {
		return 0, ErrLength(len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// Int reads an amount as a signed integer, failing rather than wrapping to a
// negative number when the top bit is set.
func Int(b []byte) (n int64, err error) {
	var u uint64
	if u, err = Mojos(b); err != nil {
		return
	}
	if u > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(u), nil
}

// Append appends the stored form of an amount to dst.
func Append(dst []byte, n uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, n)
}
