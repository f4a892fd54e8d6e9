package csvline

import (
	"bytes"
	"io"
)

// RecordReader re-derives records from a byte stream, typically one limited
// to exactly a single Split's byte range. Each logical line is divided into
// raw field values using the same quote-toggle state machine as the line
// scan. Field values are returned verbatim with the quoting delimiters
// removed - no type conversion or schema validation is performed.
type RecordReader struct {
	lr    *LineReader
	delim byte
	sep   byte
	row   bytes.Buffer
}

// CreateRecordReader returns a new RecordReader over r, validating conf and
// applying its defaults first
func CreateRecordReader(r io.Reader, conf *Conf) (*RecordReader, error) {
	lr, err := CreateLineReader(r, conf)
	if err != nil {
		return nil, err
	}
	return &RecordReader{
		lr:    lr,
		delim: byte(conf.Delimiter),
		sep:   byte(conf.Separator),
	}, nil
}

// ReadRecord returns the raw field values of the next record, or io.EOF when
// the stream is exhausted
func (rr *RecordReader) ReadRecord() ([]string, error) {
	if _, err := rr.lr.ReadLine(&rr.row); err != nil {
		return nil, err
	}
	return splitFields(rr.row.Bytes(), rr.delim, rr.sep), nil
}

// splitFields divides one logical line into fields. Delimiter bytes toggle
// the quote state and are dropped from the field value, so a doubled
// delimiter yields nothing rather than a literal delimiter (the same
// simplification the line scan makes).
func splitFields(line []byte, delim byte, sep byte) []string {
	fields := make([]string, 0, 8)
	var field []byte
	quoted := false
	for _, b := range line {
		switch {
		case b == delim:
			quoted = !quoted
		case b == sep && !quoted:
			fields = append(fields, string(field))
			field = field[:0]
		default:
			field = append(field, b)
		}
	}
	return append(fields, string(field))
}
