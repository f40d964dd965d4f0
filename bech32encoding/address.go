package bech32encoding

import (
	"chiasql.lol/hex"
)

const (
	// PuzzleHashLen is the size of the sha256 puzzle hash an address encodes.
	PuzzleHashLen = 32
	// AddressLen is the length of a mainnet address: 3 prefix, separator, 52
	// payload and 6 checksum characters.
	AddressLen = 62
)

const (
	// XchHRP is the mainnet address prefix.
	XchHRP = "xch"
	// TxchHRP is the testnet address prefix.
	TxchHRP = "txch"
)

// PuzzleHashToAddress encodes a puzzle hash as a bech32m address under the
// given prefix.
func PuzzleHashToAddress(hrp st, ph by) (addr st, err er) {
	if len(ph) != PuzzleHashLen {
		err = errorf.D("puzzle hash is %d bytes, must be %d", len(ph),
			PuzzleHashLen)
		return
	}
	return Encode(hrp, ph)
}

// AddressToPuzzleHash decodes a bech32m address, checking that it carries the
// expected prefix and a puzzle hash.
func AddressToPuzzleHash(addr, hrp st) (ph by, err er) {
	var prefix st
	if prefix, ph, err = DecodeM(addr); chk.D(err) {
		return
	}
	if prefix != hrp {
		err = log.D.Err("wrong human readable part, got '%s' want '%s'",
			prefix, hrp)
		return nil, err
	}
	if len(ph) != PuzzleHashLen {
		err = errorf.D("address payload is %d bytes, must be %d", len(ph),
			PuzzleHashLen)
		return nil, err
	}
	return
}

// HexToAddress encodes a hex puzzle hash, with or without a 0x prefix, as an
// address.
func HexToAddress(hrp, phHex st) (addr st, err er) {
	var ph by
	if ph, err = hex.Dec(hex.Trim0x(phHex)); chk.D(err) {
		err = errorf.D("failed to decode puzzle hash hex: %w", err)
		return
	}
	return PuzzleHashToAddress(hrp, ph)
}

// AddressToHex decodes an address to the hex of its puzzle hash.
func AddressToHex(addr, hrp st) (phHex st, err er) {
	var ph by
	if ph, err = AddressToPuzzleHash(addr, hrp); chk.D(err) {
		return
	}
	phHex = hex.Enc(ph)
	return
}
