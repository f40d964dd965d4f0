package env

import (
	"chiasql.lol/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
)
