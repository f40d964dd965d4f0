// Package hex is the hex codec used for blobs, with the decoding done by the
// SIMD accelerated xhex where the CPU supports it.
package hex

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/templexxx/xhex"
)

var Enc = hex.EncodeToString
var EncBytes = hex.Encode
var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// ErrOddLength is returned when the hex string has an odd number of
// characters.
var ErrOddLength = errors.New("odd length hex string")

// EncAppend appends the hex of src to dst.
func EncAppend(dst, src by) (b by) {
	l := len(dst)
	b = append(dst, make(by, len(src)*2)...)
	xhex.Encode(b[l:], src)
	return
}

// DecAppend appends the bytes of the hex in src to dst. The whole of src must
// be hex: an odd length or a non-hex character fails and returns dst
// unchanged.
func DecAppend(dst, src by) (b by, err er) {
	if len(src)%2 != 0 {
		return dst, ErrOddLength
	}
	if len(src) == 0 {
		return dst, nil
	}
	for _, c := range src {
		if !isHex(c) {
			return dst, InvalidByteError(c)
		}
	}
	l := len(dst)
	b = append(dst, make(by, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); err != nil {
		return dst, err
	}
	return
}

// Dec decodes a hex string of either case.
func Dec(s st) (b by, err er) {
	return DecAppend(make(by, 0, len(s)/2), by(s))
}

// Trim0x removes surrounding space and a leading 0x or 0X.
func Trim0x(s st) st {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHex(c byte) bo {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
