package rangecoder

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// CompressFile compresses the file name and writes the result to w.
// The whole file is read into memory, since the frequencies must be known before the first byte is coded.
func CompressFile(w io.Writer, name string) error {
	payload, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	b, err := Compress(payload)
	if err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// DecompressTo decompresses everything read from r and writes the result to w.
func DecompressTo(w io.Writer, r io.Reader) error {
	compressed, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "")
	}
	payload, err := Decompress(compressed)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
