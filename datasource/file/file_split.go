package file

import (
	"io"
	"os"

	csvsplit "github.com/go-csvsplit/csvsplit"
)

// OpenSplit returns a byte stream over exactly the Split's byte range,
// [Offset, Offset+Length). Downstream consumers use it to independently
// re-derive logical lines from their assigned range, typically through a
// csvline.RecordReader.
func OpenSplit(s csvsplit.Split) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(s.Offset, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return &splitReader{Reader: io.LimitReader(f, s.Length), file: f}, nil
}

type splitReader struct {
	io.Reader
	file *os.File
}

// Close releases the underlying file handle
func (sr *splitReader) Close() error {
	return sr.file.Close()
}
