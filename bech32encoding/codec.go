package bech32encoding

import (
	"chiasql.lol/ec/bech32"
)

// Encode encodes a payload under the human-readable part as a bech32m string.
// The human-readable part is lowercased.
func Encode(hrp st, payload by) (encoded st, err er) {
	return encode(hrp, payload, bech32.VersionM)
}

// EncodeLegacy is Encode with the original bech32 checksum.
func EncodeLegacy(hrp st, payload by) (encoded st, err er) {
	return encode(hrp, payload, bech32.Version0)
}

func encode(hrp st, payload by, v bech32.Version) (encoded st, err er) {
	var b by
	if b, err = bech32.EncodeFromBase256(by(hrp), payload, v); chk.D(err) {
		return
	}
	encoded = st(b)
	return
}

// Decode decodes a bech32 or bech32m string into its lowercase human-readable
// part and payload.
func Decode(encoded st) (hrp st, payload by, err er) {
	var h by
	if h, payload, _, err = bech32.DecodeToBase256(by(encoded)); chk.D(err) {
		return
	}
	hrp = st(h)
	return
}

// DecodeM is Decode accepting only the bech32m checksum.
func DecodeM(encoded st) (hrp st, payload by, err er) {
	var h, b5 by
	if h, b5, err = bech32.DecodeVersion(by(encoded), bech32.VersionM); chk.D(err) {
		return
	}
	if payload, err = bech32.Convert5to8(b5, false); chk.D(err) {
		return
	}
	hrp = st(h)
	return
}
