package interrupt

import (
	"chiasql.lol/lol"
)

type bo = bool

var log = lol.Main.Log
