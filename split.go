package csvsplit

import "fmt"

// Split describes one contiguous byte range of an input file, assigned in its
// entirety to a single downstream worker. Offset is relative to the beginning
// of the file. For a given file, the Splits produced by a planning pass
// partition [0, fileSize) exactly, with no gaps and no overlaps. A Split
// carries no record-count metadata - consumers re-derive logical lines
// independently when reading their assigned range.
type Split struct {
	Path   string
	Offset int64
	Length int64
}

// ToString returns a string representation of this Split
func (s Split) ToString() string {
	return fmt.Sprintf("Split file: %s offset: %d length: %d", s.Path, s.Offset, s.Length)
}
