// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// checksumLen is the number of 5-bit groups in a checksum.
const checksumLen = 6

// gen is the BCH generator used by polymod, one term per bit of the top group
// of the 30-bit state.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// hrpExpand spreads the human-readable part over 5-bit values: the high bits
// of every character, a zero, then the low five bits of every character.
func hrpExpand(hrp by) (v by) {
	v = make(by, 0, len(hrp)*2+1)
	for _, c := range hrp {
		v = append(v, c>>5)
	}
	v = append(v, 0)
	for _, c := range hrp {
		v = append(v, c&31)
	}
	return
}

// polymod computes the BCH checksum residue of a sequence of 5-bit values
// over GF(32).
func polymod(values ...by) (chk uint32) {
	chk = 1
	for _, vals := range values {
		for _, v := range vals {
			top := chk >> 25
			chk = (chk&0x1ffffff)<<5 ^ uint32(v)
			for i := range gen {
				if (top>>uint(i))&1 == 1 {
					chk ^= gen[i]
				}
			}
		}
	}
	return
}

// createChecksum computes the six checksum groups for the human-readable part
// and data, targeting the constant of the given version.
func createChecksum(hrp, data by, v Version) (cs by) {
	pm := polymod(hrpExpand(hrp), data, make(by, checksumLen)) ^ v.Constant()
	cs = make(by, checksumLen)
	for i := range cs {
		cs[i] = byte(pm>>uint(5*(5-i))) & 31
	}
	return
}

// verifyChecksum reports which of the given versions, if any, the data with
// its trailing checksum groups is valid under.
func verifyChecksum(hrp, data by, versions []Version) (v Version, ok bo) {
	pm := polymod(hrpExpand(hrp), data)
	for _, v = range versions {
		if pm == v.Constant() {
			return v, true
		}
	}
	return VersionUnknown, false
}
