package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	lru "github.com/hashicorp/golang-lru/v2"
)

func TestDistanceMatrix(t *testing.T) {
	dir, err := ioutil.TempDir("", "rangecoder.TestDistanceMatrix")
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer os.RemoveAll(dir)

	contents := map[string][]byte{
		"a.txt": bytes.Repeat([]byte("abcabcabd"), 300),
		"b.txt": bytes.Repeat([]byte("abcabcabc"), 300),
		"c.txt": bytes.Repeat([]byte("xyz01234"), 300),
	}
	for name, b := range contents {
		if err := ioutil.WriteFile(filepath.Join(dir, name), b, 0644); err != nil {
			t.Fatalf("%v", err)
		}
	}
	data, err := listFiles(dir)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(data) != 3 {
		t.Fatalf("%v", data)
	}

	for _, compressor := range []string{"rc", "xz"} {
		cacher, err := lru.New[string, float64](16)
		if err != nil {
			t.Fatalf("%v", err)
		}
		mat, err := distanceMatrix(cacher, compressor, data)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if len(mat) != 3 {
			t.Fatalf("%v", mat)
		}
		// Every file and every pair is measured exactly once.
		if cacher.Len() != 6 {
			t.Errorf("%s: %d cached", compressor, cacher.Len())
		}
		// a and b share their alphabet, c has none of it.
		if mat[0] >= mat[1] {
			t.Errorf("%s: %v", compressor, mat)
		}
	}
}
