package baseline

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestSize(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox "), 500)
	for _, name := range Compressors {
		n, err := Size(name, payload)
		if err != nil {
			t.Fatalf("%s: %+v", name, err)
		}
		if n <= 0 || n >= len(payload) {
			t.Errorf("%s: %d bytes for %d", name, n, len(payload))
		}
	}

	if _, err := Size("zip", payload); errors.Cause(err) != ErrUnknownCompressor {
		t.Errorf("%v", err)
	}
}
