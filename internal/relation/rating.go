package relation

import (
	"math"
	"strconv"
)

// MeanRating computes the arithmetic mean of the given rate values,
// rounded half-up to two decimal places and formatted with exactly two
// fractional digits ({5,5,4} yields "4.67"). ok is false when rates is
// empty, which means the book's rating must be cleared.
func MeanRating(rates []int) (rating string, ok bool) {
	if len(rates) == 0 {
		return "", false
	}
	sum := 0
	for _, rate := range rates {
		sum += rate
	}
	mean := float64(sum) / float64(len(rates))
	rounded := math.Floor(mean*100+0.5) / 100
	return strconv.FormatFloat(rounded, 'f', 2, 64), true
}
