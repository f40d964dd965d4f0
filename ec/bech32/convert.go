// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ConvertBits regroups a stream of fromBits-wide values into toBits-wide
// values, most significant bit first. Both widths must be between 1 and 8.
//
// With pad set, a trailing partial group is filled out with zero bits and the
// call only fails on an out of range input. Without pad, the bits left over
// after the last whole group must be fewer than fromBits and all zero.
func ConvertBits(data by, fromBits, toBits uint8, pad bo) (regrouped by,
	err er) {

	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	maxv := uint32(1)<<toBits - 1
	regrouped = make(by, 0, (len(data)*no(fromBits)+no(toBits)-1)/no(toBits))
	var acc uint32
	var bits uint8
	for _, b := range data {
		if b>>fromBits != 0 {
			return nil, ErrInvalidDataByte(b)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
		// only the bits not yet emitted are needed.
		acc &= uint32(1)<<bits - 1
	}
	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	case bits >= fromBits:
		return nil, ErrInvalidIncompleteGroup{}
	case acc != 0:
		return nil, ErrNonZeroPadding{}
	}
	return
}

// Convert8to5 regroups bytes into 5-bit groups. With pad set, which is how
// payloads are always encoded, it cannot fail.
func Convert8to5(data by, pad bo) (by, er) { return ConvertBits(data, 8, 5, pad) }

// Convert5to8 regroups 5-bit groups back into bytes. Without pad it rejects
// padding that is too long or not all zero.
func Convert5to8(data by, pad bo) (by, er) { return ConvertBits(data, 5, 8, pad) }
