// Package memory provides a DataSource which reads delimited text from
// in-memory buffers, each buffer standing in for a complete file. It is
// primarily useful for testing planning logic without touching disk.
package memory

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	csvsplit "github.com/go-csvsplit/csvsplit"
)

// DataSource is a set of in-memory buffers, each treated as a complete file
type DataSource struct {
	data [][]byte
}

// CreateDataSource is a factory for memory DataSources
func CreateDataSource(data [][]byte) *DataSource {
	return &DataSource{data: data}
}

// Analyze returns a FileMap over every buffer
func (ms *DataSource) Analyze() (csvsplit.FileMap, error) {
	return &FileMap{source: ms}, nil
}

// FileMap is an iterator producing a sequence of Files
type FileMap struct {
	idx    int
	source *DataSource
}

// HasNext returns true iff there is another File remaining
func (fm *FileMap) HasNext() bool {
	return fm.idx < len(fm.source.data)
}

// Next returns the next File
func (fm *FileMap) Next() csvsplit.File {
	result := &bufferHandle{idx: fm.idx, source: fm.source}
	fm.idx++
	return result
}

type bufferHandle struct {
	idx    int
	source *DataSource
}

// Status returns a synthetic FileStatus identifying this buffer
func (b *bufferHandle) Status() csvsplit.FileStatus {
	return csvsplit.FileStatus{
		Path: fmt.Sprintf("memory://%d", b.idx),
		Size: int64(len(b.source.data[b.idx])),
	}
}

// Open returns a byte stream over the buffer, positioned at offset 0
func (b *bufferHandle) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(bytes.NewReader(b.source.data[b.idx])), nil
}
