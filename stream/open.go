package stream

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is an opened record file: a Reader over its decoded content plus
// the resources backing it. Close releases the mapping and the file.
type File struct {
	*Reader

	mapping mmap.MMap
	file    *os.File
	gz      *gzip.Reader
}

// Open maps the record file at path into memory and returns a reader
// over its events. Gzip-compressed files (by magic bytes, not name) are
// unwrapped transparently. A nil opts uses DefaultOptions().
func Open(path string, opts *Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		f.Close()
		return nil, ErrEmptyFile
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	out := &File{mapping: m, file: f}
	var src io.Reader = bytes.NewReader(m)
	if len(m) >= 2 && m[0] == 0x1f && m[1] == 0x8b {
		gz, err := gzip.NewReader(src)
		if err != nil {
			out.Close()
			return nil, err
		}
		out.gz = gz
		src = gz
	}
	out.Reader = NewReader(src, opts)
	return out, nil
}

// Close releases the decompressor, the mapping and the underlying file.
// The first error wins; the remaining resources are still released.
func (f *File) Close() error {
	var first error
	if f.gz != nil {
		first = f.gz.Close()
		f.gz = nil
	}
	if f.mapping != nil {
		if err := f.mapping.Unmap(); err != nil && first == nil {
			first = err
		}
		f.mapping = nil
	}
	if f.file != nil {
		if err := f.file.Close(); err != nil && first == nil {
			first = err
		}
		f.file = nil
	}
	return first
}
