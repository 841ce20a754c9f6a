// Package baseline measures compressed sizes, of this repository's range coder and of the general purpose compressors it is compared against.
package baseline

import (
	"bytes"
	"io"

	"github.com/fumin/rangecoder"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Compressors lists the names accepted by Size.
var Compressors = []string{"rc", "xz", "lzma"}

// ErrUnknownCompressor is returned by Size for a name not in Compressors.
var ErrUnknownCompressor = errors.New("unknown compressor")

// Size returns the number of bytes payload compresses to with the named compressor.
func Size(name string, payload []byte) (int, error) {
	switch name {
	case "rc":
		b, err := rangecoder.Compress(payload)
		if err != nil {
			return -1, errors.Wrap(err, "")
		}
		return len(b), nil
	case "xz":
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return -1, errors.Wrap(err, "")
		}
		return closeAndCount(&buf, w, payload)
	case "lzma":
		var buf bytes.Buffer
		w, err := lzma.NewWriter(&buf)
		if err != nil {
			return -1, errors.Wrap(err, "")
		}
		return closeAndCount(&buf, w, payload)
	default:
		return -1, errors.Wrap(ErrUnknownCompressor, name)
	}
}

func closeAndCount(buf *bytes.Buffer, w io.WriteCloser, payload []byte) (int, error) {
	if _, err := w.Write(payload); err != nil {
		return -1, errors.Wrap(err, "")
	}
	if err := w.Close(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return buf.Len(), nil
}
