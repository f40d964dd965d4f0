package appdata

type (
	bo = bool
	st = string
)
