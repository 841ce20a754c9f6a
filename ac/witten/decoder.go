package witten

import (
	"github.com/fumin/rangecoder/ac"
	"github.com/pkg/errors"
)

// A Decoder carries the state required to decode one stream produced by an Encoder.
type Decoder struct {
	iv    interval
	value uint64
	src   *BitSource
}

// NewDecoder returns a Decoder over compressed, primed with its first 32 bits.
func NewDecoder(compressed []byte) *Decoder {
	d := &Decoder{
		iv:  newInterval(),
		src: NewBitSource(compressed),
	}
	for i := 1; i <= codeValueBits; i++ {
		d.value = 2*d.value + uint64(d.src.ReadBit())
	}
	return d
}

// Decode returns the next symbol, coded with the distribution t.
// Input bits past the end of the stream read as zero, so a truncated stream decodes without error.
func (d *Decoder) Decode(t *ac.Table) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, errors.Wrap(err, "")
	}
	total := t.Total()

	arange := (d.iv.high - d.iv.low) + 1
	target := ((d.value-d.iv.low+1)*total - 1) / arange
	symbol := t.Search(target)

	d.iv.narrow(t[symbol], t[symbol+1], total)
	// A follower never fails on the decoding side.
	_ = d.iv.renormalize(d)
	return symbol, nil
}

func (d *Decoder) settle(bit int) error {
	if bit == 1 {
		d.value -= half
	}
	return nil
}

func (d *Decoder) straddle() { d.value -= firstQtr }

func (d *Decoder) double() {
	d.value = 2*d.value + uint64(d.src.ReadBit())
}
