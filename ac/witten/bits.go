package witten

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// A BitSink packs bits MSB-first into bytes.
type BitSink struct {
	buf bytes.Buffer
	w   *bitio.Writer
}

// NewBitSink returns an empty BitSink.
func NewBitSink() *BitSink {
	s := &BitSink{}
	s.w = bitio.NewWriter(&s.buf)
	return s
}

// WriteBit appends bit, which must be 0 or 1.
func (s *BitSink) WriteBit(bit int) error {
	if err := s.w.WriteBool(bit == 1); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Flush pads the last partial byte with zeros and returns everything written.
// Flush must be called exactly once, after the last WriteBit.
func (s *BitSink) Flush() ([]byte, error) {
	if err := s.w.Close(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return s.buf.Bytes(), nil
}

// A BitSource reads bits MSB-first from a byte slice.
// Past the end of the slice it reads zeros.
type BitSource struct {
	r   *bitio.Reader
	eof bool
}

// NewBitSource returns a BitSource over b.
func NewBitSource(b []byte) *BitSource {
	return &BitSource{r: bitio.NewReader(bytes.NewReader(b))}
}

// ReadBit returns the next bit, or 0 once the input is exhausted.
func (s *BitSource) ReadBit() int {
	if s.eof {
		return 0
	}
	b, err := s.r.ReadBool()
	if err != nil {
		// A bytes.Reader only fails with io.EOF.
		s.eof = true
		return 0
	}
	if b {
		return 1
	}
	return 0
}
