// Package units is a convenient set of names designating data sizes in bytes
// using common ISO names (base 10) and their binary (base 2) counterparts.
package units

const (
	Kilobyte = 1000
	Kb       = Kilobyte
	Megabyte = Kilobyte * Kilobyte
	Mb       = Megabyte
	Gigabyte = Megabyte * Kilobyte
	Gb       = Gigabyte
)

const (
	Kibibyte = 1 << 10
	KiB      = Kibibyte
	Mebibyte = Kibibyte << 10
	MiB      = Mebibyte
	Gibibyte = Mebibyte << 10
	GiB      = Gibibyte
)
