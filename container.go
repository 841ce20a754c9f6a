// Package rangecoder provides a byte oriented order-0 range coder with a self describing container.
//
// A compressed stream starts with the original length and the 256 byte frequencies of the payload,
// each byte of them coded through a uniform distribution, followed by the payload coded with the distribution given by the frequencies.
//
// Below is an example of using this package to compress Lincoln's Gettysburg address:
//    go run compress/main.go gettysburg.txt > gettys.rc
//    cat gettys.rc | go run decompress/main.go > gettys.drc
//    diff gettysburg.txt gettys.drc
//
// Reference:
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
package rangecoder

import (
	"github.com/fumin/rangecoder/ac"
	"github.com/fumin/rangecoder/ac/witten"
	"github.com/pkg/errors"
)

// HeaderSize is the number of bytes before the payload in a compressed stream.
// The length and the frequencies are coded one byte per uniform symbol, which always occupies exactly eight bits.
const HeaderSize = 4 + 4*ac.Symbols

// ErrPayloadTooLarge is returned when a payload is longer than ac.MaxTotal bytes.
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrCorruptHeader is returned when a decoded header cannot have been produced by Compress.
var ErrCorruptHeader = errors.New("corrupt header")

// A Header is the self describing part of a compressed stream.
type Header struct {
	Length uint32
	Freqs  Histogram
}

func (h *Header) validate() error {
	if h.Length > ac.MaxTotal {
		return errors.Wrapf(ErrCorruptHeader, "length %d", h.Length)
	}
	if sum := h.Freqs.Sum(); sum != uint64(h.Length) {
		return errors.Wrapf(ErrCorruptHeader, "frequencies sum to %d, length %d", sum, h.Length)
	}
	return nil
}

// Compress range codes payload.
func Compress(payload []byte) ([]byte, error) {
	if len(payload) > ac.MaxTotal {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%d bytes", len(payload))
	}

	hdr := Header{Length: uint32(len(payload)), Freqs: Tally(payload)}
	enc := witten.NewEncoder()
	if err := writeHeader(enc, &hdr); err != nil {
		return nil, errors.Wrap(err, "")
	}

	// An empty payload has a zero total, there is nothing to code.
	if len(payload) > 0 {
		table := hdr.Freqs.Table()
		for _, bt := range payload {
			if err := enc.EncodeSymbol(int(bt), &table); err != nil {
				return nil, errors.Wrap(err, "")
			}
		}
	}

	b, err := enc.Finish()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return b, nil
}

// Decompress decodes a stream produced by Compress.
//
// The length in the header is authoritative. A truncated stream is not detected,
// the missing bits read as zeros and the tail of the payload decodes to arbitrary bytes.
func Decompress(compressed []byte) ([]byte, error) {
	dec := witten.NewDecoder(compressed)
	hdr, err := readHeader(dec)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	payload := make([]byte, hdr.Length)
	if hdr.Length == 0 {
		return payload, nil
	}
	table := hdr.Freqs.Table()
	for i := range payload {
		symbol, err := dec.Decode(&table)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		payload[i] = byte(symbol)
	}
	return payload, nil
}

// ReadHeader decodes only the header of a stream produced by Compress.
func ReadHeader(compressed []byte) (Header, error) {
	hdr, err := readHeader(witten.NewDecoder(compressed))
	if err != nil {
		return Header{}, errors.Wrap(err, "")
	}
	return hdr, nil
}

func writeHeader(enc *witten.Encoder, hdr *Header) error {
	uniform := ac.Uniform()
	if err := writeUint32(enc, &uniform, hdr.Length); err != nil {
		return errors.Wrap(err, "")
	}
	for _, f := range hdr.Freqs {
		if err := writeUint32(enc, &uniform, f); err != nil {
			return errors.Wrap(err, "")
		}
	}
	return nil
}

func readHeader(dec *witten.Decoder) (Header, error) {
	uniform := ac.Uniform()
	var hdr Header
	var err error
	hdr.Length, err = readUint32(dec, &uniform)
	if err != nil {
		return Header{}, errors.Wrap(err, "")
	}
	for i := range hdr.Freqs {
		hdr.Freqs[i], err = readUint32(dec, &uniform)
		if err != nil {
			return Header{}, errors.Wrap(err, "")
		}
	}
	if err := hdr.validate(); err != nil {
		return Header{}, err
	}
	return hdr, nil
}

// writeUint32 codes v least significant byte first, one symbol per byte.
func writeUint32(enc *witten.Encoder, uniform *ac.Table, v uint32) error {
	for i := 0; i < 4; i++ {
		if err := enc.EncodeSymbol(int(byte(v>>(8*i))), uniform); err != nil {
			return err
		}
	}
	return nil
}

func readUint32(dec *witten.Decoder, uniform *ac.Table) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		symbol, err := dec.Decode(uniform)
		if err != nil {
			return 0, err
		}
		v |= uint32(symbol) << (8 * i)
	}
	return v, nil
}
