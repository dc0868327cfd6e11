package domain

import "strings"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

func (s Side) Valid() bool { return s == SideBuy || s == SideSell }

// ParseSide accepts any casing; unknown values yield an empty Side.
func ParseSide(s string) Side {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideBuy:
		return SideBuy
	case SideSell:
		return SideSell
	default:
		return ""
	}
}
