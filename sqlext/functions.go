package sqlext

import (
	"github.com/pkg/errors"

	"chiasql.lol/amount"
	"chiasql.lol/bech32encoding"
	"chiasql.lol/compress"
	"chiasql.lol/hex"
	"chiasql.lol/sha256"
)

// Function is a scalar SQL function. Impl is a Go func in the shape
// go-sqlite3 accepts: string, []byte and integer arguments, one result and an
// optional error.
type Function struct {
	Name  st
	Impl  any
	Usage st
}

// Functions is every function registered on a connection. All of them are
// deterministic and free of side effects.
var Functions = []Function{
	{"bech32m_encode", Bech32mEncode,
		"bech32m_encode(hrp TEXT, data BLOB) TEXT - bech32m encode data under hrp"},
	{"bech32m_decode", Bech32mDecode,
		"bech32m_decode(s TEXT) BLOB - the payload of a bech32 or bech32m string"},
	{"bech32_encode", Bech32Encode,
		"bech32_encode(hrp TEXT, data BLOB) TEXT - encode with the original bech32 checksum"},
	{"bech32_hrp", Bech32HRP,
		"bech32_hrp(s TEXT) TEXT - the human-readable part of a bech32 or bech32m string"},
	{"blob_from_hex", BlobFromHex,
		"blob_from_hex(s TEXT) BLOB - decode a hex string"},
	{"chia_amount_int", ChiaAmountInt,
		"chia_amount_int(b BLOB) INTEGER - an 8 byte big-endian amount in mojos"},
	{"sha256sum", Sha256Sum,
		"sha256sum(b BLOB) BLOB - the SHA-256 digest"},
	{"zstd_decompress_blob", ZstdDecompressBlob,
		"zstd_decompress_blob(b BLOB) BLOB - decompress zstd frames"},
}

// wrap tags a codec error with the SQL function it surfaced from. The cause is
// kept for errors.Cause.
func wrap(err er, fn st) er {
	if err == nil {
		return nil
	}
	log.D.F("%s: %v", fn, err)
	return errors.Wrap(err, fn)
}

// blobArg reads a BLOB argument. go-sqlite3 returns a zero length []byte
// result as NULL, so NULL reads as the empty blob and one function's empty
// result can be passed to another.
func blobArg(v any, fn st) (b by, err er) {
	switch x := v.(type) {
	case nil:
		return by{}, nil
	case by:
		return x, nil
	case st:
		return by(x), nil
	default:
		return nil, wrap(errorf.D("argument must be BLOB or TEXT, got %T", v), fn)
	}
}

func Bech32mEncode(hrp st, data any) (encoded st, err er) {
	var b by
	if b, err = blobArg(data, "bech32m_encode"); err != nil {
		return
	}
	encoded, err = bech32encoding.Encode(hrp, b)
	return encoded, wrap(err, "bech32m_encode")
}

// Bech32mDecode returns the payload. An empty payload comes back to SQL as
// NULL.
func Bech32mDecode(s st) (data by, err er) {
	_, data, err = bech32encoding.Decode(s)
	return data, wrap(err, "bech32m_decode")
}

func Bech32Encode(hrp st, data any) (encoded st, err er) {
	var b by
	if b, err = blobArg(data, "bech32_encode"); err != nil {
		return
	}
	encoded, err = bech32encoding.EncodeLegacy(hrp, b)
	return encoded, wrap(err, "bech32_encode")
}

func Bech32HRP(s st) (hrp st, err er) {
	hrp, _, err = bech32encoding.Decode(s)
	return hrp, wrap(err, "bech32_hrp")
}

func BlobFromHex(s st) (b by, err er) {
	b, err = hex.Dec(s)
	return b, wrap(err, "blob_from_hex")
}

func ChiaAmountInt(v any) (n int64, err er) {
	var b by
	if b, err = blobArg(v, "chia_amount_int"); err != nil {
		return
	}
	n, err = amount.Int(b)
	return n, wrap(err, "chia_amount_int")
}

func Sha256Sum(v any) (sum by, err er) {
	var b by
	if b, err = blobArg(v, "sha256sum"); err != nil {
		return
	}
	return sha256.Sum(b), nil
}

func ZstdDecompressBlob(v any) (out by, err er) {
	var b by
	if b, err = blobArg(v, "zstd_decompress_blob"); err != nil {
		return
	}
	out, err = compress.Decompress(b)
	return out, wrap(err, "zstd_decompress_blob")
}
