package bech32

// Version selects one of the checksum variants. The variants share every step
// of the algorithm and differ only in the constant the checksum residue is
// expected to equal.
type Version uint8

const (
	// Version0 is the original BIP-173 bech32 checksum.
	Version0 Version = iota
	// VersionM is the BIP-350 bech32m checksum.
	VersionM
	// VersionUnknown marks a checksum that matches no known variant.
	VersionUnknown
)

var versionConstants = [...]uint32{
	Version0: 1,
	VersionM: 0x2bc830a3,
}

var versionNames = [...]st{
	Version0:       "bech32",
	VersionM:       "bech32m",
	VersionUnknown: "unknown",
}

var knownVersions = [...]Version{Version0, VersionM}

// Versions returns the variants tried when decoding without a caller-specified
// version. The slice is a copy.
func Versions() []Version {
	v := knownVersions
	return v[:]
}

// Constant is the target the polymod residue of a valid string equals.
// VersionUnknown has none and returns 0, which no valid string produces.
func (v Version) Constant() uint32 {
	if v >= VersionUnknown {
		return 0
	}
	return versionConstants[v]
}

func (v Version) String() st {
	if v > VersionUnknown {
		v = VersionUnknown
	}
	return versionNames[v]
}
