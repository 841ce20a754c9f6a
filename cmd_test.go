package rangecoder

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"
)

func TestCompressFile(t *testing.T) {
	const name = "gettysburg.txt"

	// Compress
	f, err := ioutil.TempFile("", "rangecoder.TestCompressFile.Compress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer f.Close()
	defer os.Remove(f.Name())
	if err := CompressFile(f, name); err != nil {
		t.Fatalf("%+v", err)
	}

	// Decompress
	_, err = f.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	df, err := ioutil.TempFile("", "rangecoder.TestCompressFile.Decompress")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer df.Close()
	defer os.Remove(df.Name())
	if err := DecompressTo(df, f); err != nil {
		t.Fatalf("%+v", err)
	}

	// Check if the decompressed result is the same as the original file
	_, err = df.Seek(0, 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	decom, err := ioutil.ReadAll(df)
	if err != nil {
		t.Fatalf("%v", err)
	}
	gettys, err := ioutil.ReadFile(name)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(gettys, decom) {
		t.Errorf("%s %s", gettys, decom)
	}
}

func TestCompressFileMissing(t *testing.T) {
	var buf bytes.Buffer
	if err := CompressFile(&buf, "does-not-exist.txt"); err == nil {
		t.Errorf("expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written", buf.Len())
	}
}
