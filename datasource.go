package csvsplit

import "io"

// FileStatus describes a single enumerated input file
type FileStatus struct {
	Path string
	Size int64
}

// File is a handle to one enumerated input file. Open returns a fresh byte
// stream positioned at offset 0, exclusively owned by the caller, who is
// responsible for closing it. Planners never seek within this stream except
// via sequential reads.
type File interface {
	Status() FileStatus           // identity and size, for Split construction
	Open() (io.ReadCloser, error) // how to actually read data
}

// FileMap is an interface describing an iterator for Files.
// Returned by DataSource.Analyze(), a planner will iterate through Files
// and produce the Splits for each.
type FileMap interface {
	HasNext() bool
	Next() File
}

// DataSource is a source of delimited text data which will be divided into
// Splits. It represents information about how to enumerate the underlying
// files.
type DataSource interface {
	Analyze() (FileMap, error)
}
