package file

import (
	"io"
	"os"
	"path/filepath"

	csvsplit "github.com/go-csvsplit/csvsplit"
	"github.com/go-csvsplit/csvsplit/errors"
)

// DataSource enumerates the files matching a glob pattern
type DataSource struct {
	glob string
}

// CreateDataSource is a factory for file DataSources
func CreateDataSource(glob string) *DataSource {
	return &DataSource{glob: glob}
}

// Analyze returns a FileMap over every file matching the glob, in the order
// filepath.Glob produces them. Every match must be a regular file, and
// matching zero files is an error - both abort the whole run before any byte
// of data is read.
func (fs *DataSource) Analyze() (csvsplit.FileMap, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NoFilesError{Glob: fs.glob}
	}
	files := make([]csvsplit.FileStatus, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			return nil, errors.NotAFileError{Path: path}
		}
		files = append(files, csvsplit.FileStatus{Path: path, Size: info.Size()})
	}
	return &FileMap{files: files}, nil
}

// FileMap is an iterator producing a sequence of Files
type FileMap struct {
	files []csvsplit.FileStatus
}

// HasNext returns true iff there is another File remaining
func (fm *FileMap) HasNext() bool {
	return len(fm.files) > 0
}

// Next returns the next File
func (fm *FileMap) Next() csvsplit.File {
	result := &fileHandle{status: fm.files[0]}
	fm.files = fm.files[1:]
	return result
}

type fileHandle struct {
	status csvsplit.FileStatus
}

// Status returns the identity and size of this file
func (f *fileHandle) Status() csvsplit.FileStatus {
	return f.status
}

// Open returns a byte stream over the file, positioned at offset 0
func (f *fileHandle) Open() (io.ReadCloser, error) {
	return os.Open(f.status.Path)
}
