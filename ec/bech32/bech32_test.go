// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"lukechampine.com/frand"
)

// TestValidStrings decodes the valid BIP-173 and BIP-350 test vectors and
// checks that they encode back to their lowercase form.
func TestValidStrings(t *testing.T) {
	tests := []struct {
		str st
		hrp st
		v   Version
	}{
		{"A12UEL5L", "a", Version0},
		{"a12uel5l", "a", Version0},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", "abcdef", Version0},
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", "split", Version0},
		{"?1ezyfcl", "?", Version0},
		{"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
			"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio",
			Version0},
		{"A1LQFN3A", "a", VersionM},
		{"a1lqfn3a", "a", VersionM},
		{"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", "abcdef", VersionM},
		{"split1checkupstagehandshakeupstreamerranterredcaperredlc445v", "split", VersionM},
		{"?1v759aa", "?", VersionM},
		{"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11sg7hg6",
			"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber1",
			VersionM},
		{"xch1jlgazv", "xch", VersionM},
	}
	for _, tt := range tests {
		hrp, data, v, err := DecodeGeneric(by(tt.str))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.str, err)
		}
		if st(hrp) != tt.hrp {
			t.Fatalf("%s: got hrp '%s' want '%s'", tt.str, hrp, tt.hrp)
		}
		if v != tt.v {
			t.Fatalf("%s: got version %v want %v", tt.str, v, tt.v)
		}
		var encoded by
		if encoded, err = EncodeGeneric(hrp, data, v); err != nil {
			t.Fatalf("%s: encode failed: %v", tt.str, err)
		}
		if st(encoded) != strings.ToLower(tt.str) {
			t.Fatalf("got '%s' want '%s'", encoded, strings.ToLower(tt.str))
		}
	}
}

// TestInvalidStrings checks that malformed strings fail with the specific
// error kind in the order the decoder checks them.
func TestInvalidStrings(t *testing.T) {
	tests := []struct {
		str  st
		want er
	}{
		{"\x201xj0phk", ErrInvalidCharacter(0x20)},
		{"\x7f1g6xzxy", ErrInvalidCharacter(0x7f)},
		{"\x801vctc34", ErrInvalidCharacter(0x80)},
		{"A1lqfn3a", ErrMixedCase{}},
		{"xcH1jlgazv", ErrMixedCase{}},
		{"qyrz8wqd2c9m", ErrInvalidSeparatorIndex(-1)},
		{"1qyrz8wqd2c9m", ErrInvalidSeparatorIndex(0)},
		{"16plkw9", ErrInvalidSeparatorIndex(0)},
		{"1p2gdwpf", ErrInvalidSeparatorIndex(0)},
		{"in1muywd", ErrDataPartTooShort(5)},
		{"xch1", ErrDataPartTooShort(0)},
		{"y1b0jsk6g", ErrNonCharsetChar('b')},
		{"lt1igcx5c0", ErrNonCharsetChar('i')},
		{"mm1crxm3i", ErrNonCharsetChar('i')},
		{"au1s5cgom", ErrNonCharsetChar('o')},
		{"xch1" + strings.Repeat("q", 87), ErrInvalidLength(91)},
	}
	for _, tt := range tests {
		_, _, err := Decode(by(tt.str))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: got error '%v' want '%v'", tt.str, err, tt.want)
		}
	}
}

func TestInvalidChecksum(t *testing.T) {
	var err er
	for _, s := range []st{"M1VUXWEZ", "xch1jlgazw", "xch1etlqusgk50"} {
		_, _, err = Decode(by(s))
		var e ErrInvalidChecksum
		if !errors.As(err, &e) {
			t.Fatalf("%s: got '%v' want invalid checksum", s, err)
		}
		if e.Actual != strings.ToLower(s[len(s)-checksumLen:]) {
			t.Fatalf("%s: error reports actual checksum '%s'", s, e.Actual)
		}
	}
	// the error carries what the checksum should have been under each variant.
	_, _, err = Decode(by("xch1etlqusgk50"))
	var e ErrInvalidChecksum
	errors.As(err, &e)
	if e.ExpectedM != "usgk05" || e.Expected != "fvc62k" {
		t.Fatalf("unexpected checksum expectations %+v", e)
	}
}

func TestDecodeNoLimit(t *testing.T) {
	hrp := by("lnbc")
	data := make(by, 120)
	for i := range data {
		data[i] = byte(i % 32)
	}
	if _, err := EncodeM(hrp, data); !errors.Is(err, ErrInvalidLength(len(hrp)+1+len(data)+checksumLen)) {
		t.Fatalf("expected length error, got %v", err)
	}
	// build the long string by hand since the encoders enforce the limit.
	chars, _ := toChars(data)
	cs, _ := toChars(createChecksum(hrp, data, VersionM))
	long := append(append(append(append(by{}, hrp...), Separator), chars...), cs...)
	if _, _, err := Decode(long); !errors.Is(err, ErrInvalidLength(len(long))) {
		t.Fatalf("expected length error from Decode, got %v", err)
	}
	gotHRP, gotData, err := DecodeNoLimit(long)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotHRP, hrp) || !bytes.Equal(gotData, data) {
		t.Fatalf("DecodeNoLimit did not round trip")
	}
}

func TestDecodeVersion(t *testing.T) {
	var err er
	if _, _, err = DecodeVersion(by("xch1etlqusgk05"), VersionM); err != nil {
		t.Fatal(err)
	}
	var e ErrInvalidChecksum
	if _, _, err = DecodeVersion(by("xch1etlqusgk05"), Version0); !errors.As(err, &e) {
		t.Fatalf("bech32m string accepted as bech32: %v", err)
	}
	if _, _, err = DecodeVersion(by("xch1etlqfvc62k"), Version0); err != nil {
		t.Fatal(err)
	}
	if _, _, err = DecodeVersion(by("xch1etlqfvc62k"), VersionM); !errors.As(err, &e) {
		t.Fatalf("bech32 string accepted as bech32m: %v", err)
	}
	if _, _, err = DecodeVersion(by("xch1etlqfvc62k"), VersionUnknown); !errors.Is(err,
		ErrInvalidVersion(VersionUnknown)) {

		t.Fatalf("got %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		hrp  st
		data by
		v    Version
		want er
	}{
		{"", nil, VersionM, ErrInvalidHRP("")},
		{"x ch", nil, VersionM, ErrInvalidHRP("x ch")},
		{"x\x7fch", nil, VersionM, ErrInvalidHRP("x\x7fch")},
		{"xch", by{1, 2, 32}, VersionM, ErrInvalidDataByte(32)},
		{"xch", make(by, 81), VersionM, ErrInvalidLength(91)},
		{strings.Repeat("a", 84), nil, VersionM, ErrInvalidLength(91)},
		{"xch", nil, VersionUnknown, ErrInvalidVersion(VersionUnknown)},
	}
	for _, tt := range tests {
		_, err := EncodeGeneric(by(tt.hrp), tt.data, tt.v)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: got error '%v' want '%v'", tt.hrp, err, tt.want)
		}
	}
	// the longest allowed string still encodes.
	if _, err := EncodeM(by(strings.Repeat("a", 83)), nil); err != nil {
		t.Fatal(err)
	}
}

func TestEncodeLowercasesHRP(t *testing.T) {
	encoded, err := EncodeFromBase256(by("XCH"), by{0xca, 0xfe}, VersionM)
	if err != nil {
		t.Fatal(err)
	}
	if st(encoded) != "xch1etlqusgk05" {
		t.Fatalf("got %s", encoded)
	}
}

// TestBase256Vectors covers the payload vectors for the xch prefix.
func TestBase256Vectors(t *testing.T) {
	tests := []struct {
		hrp     st
		payload st
		v       Version
		want    st
	}{
		{"xch", "", VersionM, "xch1jlgazv"},
		{"xch", "cafe", VersionM, "xch1etlqusgk05"},
		{"xch", "f4f6ca53d56211869b1705ce29726bad7a67d30ebe002a65450b13adbb05a669",
			VersionM, "xch17nmv5574vggcdxchqh8zjunt44ax05cwhcqz5e29pvf6mwc95e5s27yfa4"},
		{"txch", "f4f6ca53d56211869b1705ce29726bad7a67d30ebe002a65450b13adbb05a669",
			VersionM, "txch17nmv5574vggcdxchqh8zjunt44ax05cwhcqz5e29pvf6mwc95e5s8erlux"},
		{"xch", "", Version0, "xch18rc38w"},
		{"xch", "cafe", Version0, "xch1etlqfvc62k"},
	}
	for _, tt := range tests {
		payload, err := hex.DecodeString(tt.payload)
		if err != nil {
			t.Fatal(err)
		}
		var encoded by
		if encoded, err = EncodeFromBase256(by(tt.hrp), payload, tt.v); err != nil {
			t.Fatal(err)
		}
		if st(encoded) != tt.want {
			t.Fatalf("got %s want %s", encoded, tt.want)
		}
		hrp, decoded, v, err := DecodeToBase256(encoded)
		if err != nil {
			t.Fatal(err)
		}
		if st(hrp) != tt.hrp || !bytes.Equal(decoded, payload) || v != tt.v {
			t.Fatalf("%s decoded to %s %x %v", encoded, hrp, decoded, v)
		}
		// uppercase input is accepted and yields the same result.
		if _, decoded, _, err = DecodeToBase256(bytes.ToUpper(encoded)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(decoded, payload) {
			t.Fatalf("uppercase form decoded to %x", decoded)
		}
	}
}

// TestPadding checks that strings with valid checksums but bad padding in the
// last group are refused.
func TestPadding(t *testing.T) {
	var err er
	// groups 0x19 0x01: one byte plus two set padding bits.
	if _, _, _, err = DecodeToBase256(by("xch1epslclmc")); !errors.Is(err, ErrNonZeroPadding{}) {
		t.Fatalf("got %v, want non-zero padding", err)
	}
	// groups 0x19 0x00: the same byte with clean padding.
	var payload by
	if _, payload, _, err = DecodeToBase256(by("xch1eqdfv2x2")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(payload, by{0xc8}) {
		t.Fatalf("got %x", payload)
	}
	// three groups are fifteen bits, seven of which would be padding.
	if _, _, _, err = DecodeToBase256(by("xch1pzrzvka0k")); !errors.Is(err,
		ErrInvalidIncompleteGroup{}) {

		t.Fatalf("got %v, want incomplete group", err)
	}
	// a single group is less than a byte.
	if _, _, _, err = DecodeToBase256(by("xch1qhakmtx")); !errors.Is(err,
		ErrInvalidIncompleteGroup{}) {

		t.Fatalf("got %v, want incomplete group", err)
	}
}

// TestSubstitution flips every data character of some valid strings to every
// other charset character and expects each result to be rejected.
func TestSubstitution(t *testing.T) {
	for _, s := range []st{
		"xch1jlgazv",
		"xch1etlqusgk05",
		"xch17nmv5574vggcdxchqh8zjunt44ax05cwhcqz5e29pvf6mwc95e5s27yfa4",
		"xch1etlqfvc62k",
		"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx",
	} {
		one := strings.LastIndexByte(s, Separator)
		for i := one + 1; i < len(s); i++ {
			for j := 0; j < len(Charset); j++ {
				if Charset[j] == s[i] {
					continue
				}
				mangled := by(s)
				mangled[i] = Charset[j]
				_, _, err := Decode(mangled)
				var e ErrInvalidChecksum
				if !errors.As(err, &e) {
					t.Fatalf("%s: substitution not detected, got %v", mangled, err)
				}
			}
			for _, c := range "bio1" {
				mangled := by(s)
				mangled[i] = byte(c)
				if _, _, err := Decode(mangled); err == nil {
					t.Fatalf("%s: excluded character accepted", mangled)
				}
			}
		}
	}
}

func TestCaseSwap(t *testing.T) {
	for _, s := range []st{"xch1etlqusgk05", "XCH1ETLQUSGK05"} {
		for i := range s {
			c := s[i]
			var swapped byte
			switch {
			case c >= 'a' && c <= 'z':
				swapped = c - 'a' + 'A'
			case c >= 'A' && c <= 'Z':
				swapped = c - 'A' + 'a'
			default:
				continue
			}
			mangled := by(s)
			mangled[i] = swapped
			if _, _, err := Decode(mangled); !errors.Is(err, ErrMixedCase{}) {
				t.Fatalf("%s: got %v want mixed case", mangled, err)
			}
		}
	}
}

// TestRoundTrip encodes and decodes random payloads under random printable
// human-readable parts with both checksum versions.
func TestRoundTrip(t *testing.T) {
	for i := 0; i < 10000; i++ {
		hrp := make(by, frand.Intn(10)+1)
		for j := range hrp {
			hrp[j] = byte(33 + frand.Intn(94))
		}
		payload := frand.Bytes(frand.Intn(41))
		v := Versions()[frand.Intn(len(Versions()))]
		encoded, err := EncodeFromBase256(hrp, payload, v)
		if err != nil {
			t.Fatalf("encoding %q %x: %v", hrp, payload, err)
		}
		if len(encoded) > MaxLength {
			t.Fatalf("encoded string too long: %d", len(encoded))
		}
		gotHRP, gotPayload, gotV, err := DecodeToBase256(encoded)
		if err != nil {
			t.Fatalf("decoding %s: %v", encoded, err)
		}
		if !bytes.Equal(gotHRP, bytes.ToLower(hrp)) {
			t.Fatalf("hrp mangled: %q -> %q", hrp, gotHRP)
		}
		if !bytes.Equal(gotPayload, payload) {
			t.Fatalf("payload mangled: %x -> %x", payload, gotPayload)
		}
		if gotV != v {
			t.Fatalf("version mangled: %v -> %v", v, gotV)
		}
	}
}

func TestPolymodVersions(t *testing.T) {
	if Version0.Constant() != 1 || VersionM.Constant() != 0x2bc830a3 {
		t.Fatal("wrong version constants")
	}
	if VersionUnknown.Constant() != 0 || Version(9).String() != "unknown" {
		t.Fatal("unknown version misreported")
	}
	// the residue of a whole valid string is the version constant.
	for _, s := range []st{"xch1etlqusgk05", "xch1etlqfvc62k"} {
		one := strings.LastIndexByte(s, Separator)
		groups, err := toGroups(by(s[one+1:]))
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := verifyChecksum(by(s[:one]), groups, Versions()); !ok {
			t.Fatalf("%s did not verify", s)
		}
	}
}

// TestVersionsCopy checks that the variant list handed out cannot change what
// Decode accepts.
func TestVersionsCopy(t *testing.T) {
	vs := Versions()
	for i := range vs {
		vs[i] = VersionUnknown
	}
	if _, _, v, err := DecodeGeneric(by("xch1etlqusgk05")); err != nil || v != VersionM {
		t.Fatalf("bech32m string no longer decodes: %v %v", v, err)
	}
	if _, _, v, err := DecodeGeneric(by("xch1etlqfvc62k")); err != nil || v != Version0 {
		t.Fatalf("bech32 string no longer decodes: %v %v", v, err)
	}
	if again := Versions(); again[0] != Version0 || again[1] != VersionM {
		t.Fatalf("Versions changed to %v", again)
	}
}
