// Log file IO with transparent compression.  Rotated serverstats logs
// arrive gzipped (sometimes zstd these days), and it's a pain to have to
// decompress a 2GB .dat just to cut three hours out of it, so the openers
// here pick a codec from the filename suffix.  Everything else is a plain
// file.

package statlog

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Readers and writers carry a close chain that releases the codec first and
// the underlying file second.

type logReader struct {
	io.Reader
	close func() error
}

func (l *logReader) Close() error {
	return l.close()
}

type logWriter struct {
	io.Writer
	close func() error
}

func (l *logWriter) Close() error {
	return l.close()
}

// OpenLog opens a .dat file for reading, decompressing .gz and .zst inputs
// transparently.
func OpenLog(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &logReader{zr, func() error {
			zerr := zr.Close()
			ferr := f.Close()
			if zerr != nil {
				return zerr
			}
			return ferr
		}}, nil
	case strings.HasSuffix(filename, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &logReader{zr, func() error {
			zr.Close()
			return f.Close()
		}}, nil
	}
	return f, nil
}

// CreateLog creates (or truncates) a .dat file for writing, compressing .gz
// and .zst outputs transparently.  The returned writer must be closed for
// the compressed trailer to be written out.
func CreateLog(filename string) (io.WriteCloser, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filename, ".gz"):
		zw := gzip.NewWriter(f)
		return &logWriter{zw, func() error {
			zerr := zw.Close()
			ferr := f.Close()
			if zerr != nil {
				return zerr
			}
			return ferr
		}}, nil
	case strings.HasSuffix(filename, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &logWriter{zw, func() error {
			zerr := zw.Close()
			ferr := f.Close()
			if zerr != nil {
				return zerr
			}
			return ferr
		}}, nil
	}
	return f, nil
}
