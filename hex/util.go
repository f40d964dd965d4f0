package hex

type (
	bo = bool
	by = []byte
	st = string
	er = error
)
