package witten

import (
	"github.com/fumin/rangecoder/ac"
	"github.com/pkg/errors"
)

// An Encoder carries the state required to range code one stream.
// An Encoder must not be shared between goroutines.
type Encoder struct {
	iv       interval
	fbits    uint64 // bits following the next settled bit, with its opposite value
	sink     *BitSink
	finished bool
}

// NewEncoder returns an Encoder over the full 32-bit interval.
func NewEncoder() *Encoder {
	return &Encoder{
		iv:   newInterval(),
		sink: NewBitSink(),
	}
}

// Encode codes the symbol whose sub-range is [cumFreq, cumFreq+freq) in a distribution summing to total.
func (e *Encoder) Encode(cumFreq, freq, total uint64) error {
	if e.finished {
		return ac.ErrFinished
	}
	if freq == 0 || total == 0 || total > ac.MaxTotal || cumFreq > total || freq > total-cumFreq {
		return errors.Wrapf(ac.ErrInvalidDistribution, "cumFreq %d freq %d total %d", cumFreq, freq, total)
	}

	e.iv.narrow(cumFreq, cumFreq+freq, total)
	if err := e.iv.renormalize(e); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// EncodeSymbol codes symbol with the distribution t.
func (e *Encoder) EncodeSymbol(symbol int, t *ac.Table) error {
	cumFreq, freq := t.Freq(symbol)
	if err := e.Encode(cumFreq, freq, t.Total()); err != nil {
		return errors.Wrapf(err, "symbol %d", symbol)
	}
	return nil
}

// Finish emits the bits that disambiguate the final interval and returns the coded stream.
// The Encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, ac.ErrFinished
	}
	e.finished = true

	e.fbits += 1
	bit := 1
	if e.iv.low < firstQtr {
		bit = 0
	}
	if err := e.bitPlusFollow(bit); err != nil {
		return nil, errors.Wrap(err, "")
	}
	b, err := e.sink.Flush()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return b, nil
}

func (e *Encoder) bitPlusFollow(bit int) error {
	negbit := 0
	if bit == 0 {
		negbit = 1
	}

	if err := e.sink.WriteBit(bit); err != nil {
		return err
	}
	for e.fbits > 0 {
		if err := e.sink.WriteBit(negbit); err != nil {
			return err
		}
		e.fbits -= 1
	}
	return nil
}

func (e *Encoder) settle(bit int) error { return e.bitPlusFollow(bit) }

func (e *Encoder) straddle() { e.fbits += 1 }

func (e *Encoder) double() {}
