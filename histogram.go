package rangecoder

import (
	"github.com/fumin/rangecoder/ac"
)

// A Histogram counts the occurrences of each byte value in a payload.
type Histogram [ac.Symbols]uint32

// Tally counts the bytes of payload.
// payload must not be longer than ac.MaxTotal, or the counts may wrap.
func Tally(payload []byte) Histogram {
	var h Histogram
	for _, bt := range payload {
		h[bt]++
	}
	return h
}

// Sum returns the total number of bytes counted.
func (h *Histogram) Sum() uint64 {
	var sum uint64
	for _, c := range h {
		sum += uint64(c)
	}
	return sum
}

// Table returns the cumulative frequency table of h.
func (h *Histogram) Table() ac.Table {
	return ac.Cumulative((*[ac.Symbols]uint32)(h))
}

// Distinct returns the number of byte values that occur at least once.
func (h *Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}
