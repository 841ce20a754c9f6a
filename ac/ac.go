// Package ac defines the distributions the range coding algorithm requires.
// See its subpackages for particular finite precision realizations of the algorithm.
package ac

import (
	"github.com/pkg/errors"
)

const (
	// Symbols is the size of the alphabet, one symbol per byte value.
	Symbols = 256

	// MaxTotal is the largest distribution total a coder accepts.
	// A renormalized 32-bit interval is always wider than 1<<30, so every symbol with a nonzero frequency keeps a nonempty sub-interval.
	MaxTotal = 1 << 30
)

// ErrInvalidDistribution is returned when a coder is handed a frequency, cumulative frequency or total that cannot describe a sub-interval.
var ErrInvalidDistribution = errors.New("invalid distribution")

// ErrFinished is returned when an encoder is used after it has been finished.
var ErrFinished = errors.New("encoder already finished")

// A Table is a cumulative frequency table over the byte alphabet.
// Entry i holds the sum of the frequencies of symbols 0..i-1, so t[0] is zero and t[Symbols] is the total.
type Table [Symbols + 1]uint64

// Cumulative returns the cumulative table of freqs.
func Cumulative(freqs *[Symbols]uint32) Table {
	var t Table
	for i, f := range freqs {
		t[i+1] = t[i] + uint64(f)
	}
	return t
}

// Uniform returns the table in which every byte has frequency one.
func Uniform() Table {
	var t Table
	for i := range t {
		t[i] = uint64(i)
	}
	return t
}

// Total returns the sum of all frequencies.
func (t *Table) Total() uint64 {
	return t[Symbols]
}

// Freq returns the cumulative frequency of symbol and its own frequency.
func (t *Table) Freq(symbol int) (cumFreq, freq uint64) {
	return t[symbol], t[symbol+1] - t[symbol]
}

// Search returns the largest symbol whose cumulative frequency is not greater than value.
// Symbols with zero frequency share their cumulative frequency with the next symbol and are therefore never returned for a value below the total.
func (t *Table) Search(value uint64) int {
	lo, hi := 0, Symbols-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t[mid] <= value {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Validate checks that total is usable by a coder.
func (t *Table) Validate() error {
	total := t.Total()
	if total == 0 || total > MaxTotal {
		return errors.Wrapf(ErrInvalidDistribution, "total %d", total)
	}
	return nil
}
