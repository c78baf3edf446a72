package grep

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// ErrIsDirectory is reported for a directory argument when Recursive is off.
var ErrIsDirectory = errors.New("is a directory")

// collect expands paths into the regular files to scan, walking
// directories when Recursive is set. Paths that cannot be used are
// logged and returned as errors.
func (s *Searcher) collect(paths []string) ([]string, []error) {
	var (
		inputs []string
		errs   []error
	)

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			s.logger.Warn("cannot stat input", zap.String("path", root), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		if !info.IsDir() {
			inputs = append(inputs, root)
			continue
		}

		if !s.opts.Recursive {
			err := fmt.Errorf("%s: %w", root, ErrIsDirectory)
			s.logger.Warn("skipping directory", zap.String("path", root))
			errs = append(errs, err)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				s.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
				return nil
			}
			if d.Type().IsRegular() {
				inputs = append(inputs, path)
			}
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walking %s: %w", root, err))
		}
	}

	return inputs, errs
}

// openInput opens a file, decompressing .zst and .gz files.
func openInput(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &decodingReader{Reader: dec, closeDecoder: func() error {
			dec.Close()
			return nil
		}, file: f}, nil
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &decodingReader{Reader: zr, closeDecoder: zr.Close, file: f}, nil
	default:
		return f, nil
	}
}

// decodingReader reads through a decompressor and closes it together with
// the underlying file.
type decodingReader struct {
	io.Reader
	closeDecoder func() error
	file         *os.File
}

func (r *decodingReader) Close() error {
	return errors.Join(r.closeDecoder(), r.file.Close())
}
