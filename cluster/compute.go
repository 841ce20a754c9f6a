package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fumin/rangecoder/internal/baseline"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
)

var (
	compressor = flag.String("i", "rc", "compressor measuring complexity: "+strings.Join(baseline.Compressors, ", "))
	dataDir    = flag.String("d", "mammals10", "data directory")
	cacheSize  = flag.Int("cache", 1024, "number of complexities kept in memory")
	verbose    = flag.Bool("v", false, "verbosity")
)

type config struct {
	Compressor string
	Dir        string
	CacheSize  int
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	cfg := config{Compressor: *compressor, Dir: *dataDir, CacheSize: *cacheSize}
	if *verbose {
		pretty.Println(cfg)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(cfg config) error {
	data, err := listFiles(cfg.Dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if len(data) < 2 {
		return errors.Errorf("need at least two files in %s, got %d", cfg.Dir, len(data))
	}
	cacher, err := lru.New[string, float64](cfg.CacheSize)
	if err != nil {
		return errors.Wrap(err, "")
	}
	distMat, err := distanceMatrix(cacher, cfg.Compressor, data)
	if err != nil {
		return errors.Wrap(err, "")
	}

	if err := display(data, distMat); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func display(data []string, distMat []float64) error {
	// Print data as a comma separated array.
	buf := bytes.NewBuffer(nil)
	for i, fpath := range data {
		if err := buf.WriteByte('"'); err != nil {
			return errors.Wrap(err, "")
		}

		name := filepath.Base(fpath)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if _, err := buf.WriteString(base); err != nil {
			return errors.Wrap(err, "")
		}

		if err := buf.WriteByte('"'); err != nil {
			return errors.Wrap(err, "")
		}

		if i == len(data)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	// Print distance matrix as a comma separated array.
	buf.Reset()
	for i, f := range distMat {
		if _, err := buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(distMat)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	return nil
}

// distance returns the normalized compression distance between the files x and y.
func distance(cacher *lru.Cache[string, float64], compressor, x, y string) (float64, error) {
	xb, err := ioutil.ReadFile(x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	yb, err := ioutil.ReadFile(y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	xy := make([]byte, 0, len(xb)+len(yb))
	xy = append(xy, xb...)
	xy = append(xy, yb...)

	kxy, err := complexity(cacher, compressor, x+"\x00"+y, xy)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	kx, err := complexity(cacher, compressor, x, xb)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	ky, err := complexity(cacher, compressor, y, yb)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}

	minxy := kx
	if ky < kx {
		minxy = ky
	}
	maxxy := kx
	if ky > kx {
		maxxy = ky
	}

	dist := (kxy - minxy) / maxxy
	return dist, nil
}

func complexity(cacher *lru.Cache[string, float64], compressor, key string, payload []byte) (float64, error) {
	size, ok := cacher.Get(key)
	if ok {
		return size, nil
	}

	n, err := baseline.Size(compressor, payload)
	if err != nil {
		return -1, errors.Wrap(err, key)
	}
	size = float64(n)

	cacher.Add(key, size)
	return size, nil
}

func distanceMatrix(cacher *lru.Cache[string, float64], compressor string, data []string) ([]float64, error) {
	n := len(data)
	mat := make([]float64, 0, n*(n-1)/2)
	for i, dx := range data[:n-1] {
		for _, dy := range data[i+1:] {
			dist, err := distance(cacher, compressor, dx, dy)
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			mat = append(mat, dist)
			log.Printf("\"%s\"-\"%s\": %f", dx, dy, dist)
		}
	}
	return mat, nil
}

func listFiles(dir string) ([]string, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		fpath := filepath.Join(dir, f.Name())
		data = append(data, fpath)
	}
	return data, nil
}
