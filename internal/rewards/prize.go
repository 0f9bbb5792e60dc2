package rewards

import "math"

// PrizeAmount extracts the token amount from a wheel label such as
// "+50 Tokens": the first run of ASCII digits. Labels without digits, or
// with a number too large for an int, are worth zero.
func PrizeAmount(label string) int {
	start := -1
	for i := 0; i < len(label); i++ {
		if label[i] >= '0' && label[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	n := 0
	for i := start; i < len(label) && label[i] >= '0' && label[i] <= '9'; i++ {
		d := int(label[i] - '0')
		if n > (math.MaxInt32-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	return n
}
