package renderer

import "strconv"

const (
	DateTimeLayout = "02.01.2006 15:04"
	DateLayout     = "02.01.2006"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}
