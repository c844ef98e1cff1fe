package util

import (
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

func IsBzip2(path string) bool {
	return strings.HasSuffix(path, ".bz2")
}

type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenFile opens path for reading, decompressing it when it ends in .bz2.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsBzip2(path) {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &multiCloser{Reader: bz, closers: []io.Closer{bz, f}}, nil
}

// CreateFile creates path for writing, compressing it when it ends in .bz2.
// The compressor is flushed by Close.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !IsBzip2(path) {
		return f, nil
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &multiCloser{Writer: bz, closers: []io.Closer{bz, f}}, nil
}
