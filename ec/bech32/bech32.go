// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32 implements the bech32 (BIP-173) and bech32m (BIP-350)
// checksummed base32 encodings.
//
// The encoders and decoders here work on 5-bit groups. Use EncodeFromBase256
// and DecodeToBase256, or ConvertBits, to move between groups and bytes.
package bech32

import (
	"bytes"
)

const (
	// Charset is the 32 character alphabet of the data part, indexed by the
	// 5-bit value each character carries.
	Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	// Separator divides the human-readable part from the data part. It is the
	// last '1' in the string, as '1' may also appear in the human-readable part.
	Separator = '1'
	// MaxLength is the longest string BIP-173 allows.
	MaxLength = 90
)

// charsetRev maps a lowercase character back to its 5-bit value, or -1.
var charsetRev = func() (rev [256]int8) {
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		rev[Charset[i]] = int8(i)
	}
	return
}()

// toChars maps 5-bit groups to their charset characters.
func toChars(data by) (chars by, err er) {
	chars = make(by, len(data))
	for i, b := range data {
		if no(b) >= len(Charset) {
			return nil, ErrInvalidDataByte(b)
		}
		chars[i] = Charset[b]
	}
	return
}

// toGroups maps lowercase charset characters back to their 5-bit groups.
func toGroups(chars by) (data by, err er) {
	data = make(by, len(chars))
	for i, c := range chars {
		v := charsetRev[c]
		if v < 0 {
			return nil, ErrNonCharsetChar(c)
		}
		data[i] = byte(v)
	}
	return
}

// checkCase returns the lowercase form of s if s is not mixed case.
func checkCase(s by) (lower by, err er) {
	lower = bytes.ToLower(s)
	if !bytes.Equal(s, lower) && !bytes.Equal(s, bytes.ToUpper(s)) {
		return nil, ErrMixedCase{}
	}
	return
}

// Encode encodes 5-bit groups with a bech32 checksum.
func Encode(hrp, data by) (encoded by, err er) {
	return EncodeGeneric(hrp, data, Version0)
}

// EncodeM encodes 5-bit groups with a bech32m checksum.
func EncodeM(hrp, data by) (encoded by, err er) {
	return EncodeGeneric(hrp, data, VersionM)
}

// EncodeGeneric encodes 5-bit groups under the human-readable part using the
// checksum of the given version. The result is all lowercase.
func EncodeGeneric(hrp, data by, v Version) (encoded by, err er) {
	if v >= VersionUnknown {
		return nil, ErrInvalidVersion(v)
	}
	if len(hrp) == 0 {
		return nil, ErrInvalidHRP(hrp)
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return nil, ErrInvalidHRP(hrp)
		}
	}
	total := len(hrp) + 1 + len(data) + checksumLen
	if total > MaxLength {
		return nil, ErrInvalidLength(total)
	}
	hrp = bytes.ToLower(hrp)
	var chars by
	if chars, err = toChars(data); err != nil {
		return
	}
	// checksum groups are always in range.
	cs, _ := toChars(createChecksum(hrp, data, v))
	encoded = make(by, 0, total)
	encoded = append(encoded, hrp...)
	encoded = append(encoded, Separator)
	encoded = append(encoded, chars...)
	encoded = append(encoded, cs...)
	return
}

// decode splits and verifies a bech32 string against the given versions,
// returning the lowercase human-readable part and the data groups without the
// checksum.
func decode(bech by, limit bo, versions []Version) (hrp, data by, v Version,
	err er) {

	v = VersionUnknown
	if limit && len(bech) > MaxLength {
		err = ErrInvalidLength(len(bech))
		return
	}
	for _, c := range bech {
		if c < 33 || c > 126 {
			err = ErrInvalidCharacter(c)
			return
		}
	}
	if bech, err = checkCase(bech); err != nil {
		return
	}
	one := bytes.LastIndexByte(bech, Separator)
	if one < 1 {
		err = ErrInvalidSeparatorIndex(one)
		return
	}
	if n := len(bech) - one - 1; n < checksumLen {
		err = ErrDataPartTooShort(n)
		return
	}
	hrp = bech[:one]
	var groups by
	if groups, err = toGroups(bech[one+1:]); err != nil {
		return
	}
	var ok bo
	if v, ok = verifyChecksum(hrp, groups, versions); !ok {
		payload := groups[:len(groups)-checksumLen]
		expected, _ := toChars(createChecksum(hrp, payload, Version0))
		expectedM, _ := toChars(createChecksum(hrp, payload, VersionM))
		err = ErrInvalidChecksum{
			Expected:  st(expected),
			ExpectedM: st(expectedM),
			Actual:    st(bech[len(bech)-checksumLen:]),
		}
		return nil, nil, VersionUnknown, err
	}
	data = groups[:len(groups)-checksumLen]
	return
}

// Decode decodes a bech32 or bech32m string of at most MaxLength characters
// into its lowercase human-readable part and 5-bit data groups.
func Decode(bech by) (hrp, data by, err er) {
	hrp, data, _, err = decode(bech, true, knownVersions[:])
	return
}

// DecodeNoLimit is Decode without the length limit, for formats such as
// lightning invoices that exceed it.
func DecodeNoLimit(bech by) (hrp, data by, err er) {
	hrp, data, _, err = decode(bech, false, knownVersions[:])
	return
}

// DecodeGeneric is Decode that also reports which checksum version matched.
func DecodeGeneric(bech by) (hrp, data by, v Version, err er) {
	return decode(bech, true, knownVersions[:])
}

// DecodeVersion is Decode accepting only the checksum of the given version.
func DecodeVersion(bech by, v Version) (hrp, data by, err er) {
	if v >= VersionUnknown {
		return nil, nil, ErrInvalidVersion(v)
	}
	hrp, data, _, err = decode(bech, true, []Version{v})
	return
}

// EncodeFromBase256 regroups a byte payload into 5-bit groups and encodes it
// with the checksum of the given version.
func EncodeFromBase256(hrp, payload by, v Version) (encoded by, err er) {
	var data by
	if data, err = Convert8to5(payload, true); err != nil {
		return
	}
	return EncodeGeneric(hrp, data, v)
}

// DecodeToBase256 decodes a bech32 or bech32m string and regroups its data
// part back into bytes, rejecting invalid padding.
func DecodeToBase256(bech by) (hrp, payload by, v Version, err er) {
	var data by
	if hrp, data, v, err = decode(bech, true, knownVersions[:]); err != nil {
		return
	}
	if payload, err = Convert5to8(data, false); err != nil {
		return nil, nil, VersionUnknown, err
	}
	return
}
