// Package witten implements the range coding algorithm described in
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
//
// Symbols are bytes and distributions are cumulative frequency tables, see package ac.
package witten

const (
	codeValueBits = 32
	topValue      = (uint64(1) << codeValueBits) - 1
	firstQtr      = topValue/4 + 1
	half          = 2 * firstQtr
	thirdQtr      = 3 * firstQtr
)

// An interval is the current coding range [low, high].
// Both bounds stay within [0, topValue] and low <= high.
type interval struct {
	low  uint64
	high uint64
}

func newInterval() interval {
	return interval{high: topValue}
}

// narrow shrinks the interval to the sub-range [cumLow, cumHigh) of a distribution summing to total.
func (iv *interval) narrow(cumLow, cumHigh, total uint64) {
	arange := (iv.high - iv.low) + 1
	iv.high = iv.low + arange*cumHigh/total - 1
	iv.low = iv.low + arange*cumLow/total
}

// A follower reacts to each doubling step of renormalize.
// The encoder emits bits, the decoder consumes them.
type follower interface {
	// settle is called when the leading bit of the interval is known.
	// For bit 1 the interval has already been moved down by half.
	settle(bit int) error

	// straddle is called when the interval lies in the middle half and has been moved down by firstQtr.
	straddle()

	// double is called after the interval has been doubled.
	double()
}

// renormalize doubles the interval until it is wider than a quarter of the code space.
// The encoder and the decoder both go through here so their interval arithmetic cannot drift apart.
func (iv *interval) renormalize(f follower) error {
	for {
		if iv.high < half {
			if err := f.settle(0); err != nil {
				return err
			}
		} else if iv.low >= half {
			iv.low -= half
			iv.high -= half
			if err := f.settle(1); err != nil {
				return err
			}
		} else if iv.low >= firstQtr && iv.high < thirdQtr {
			iv.low -= firstQtr
			iv.high -= firstQtr
			f.straddle()
		} else {
			return nil
		}

		iv.low = 2 * iv.low
		iv.high = 2*iv.high + 1
		f.double()
	}
}
