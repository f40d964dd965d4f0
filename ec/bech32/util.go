package bech32

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)
