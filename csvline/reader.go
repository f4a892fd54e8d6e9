package csvline

import (
	"bufio"
	"bytes"
	"io"
)

// LineReader reads one logical line at a time from a byte stream. The quote
// state machine is a simple toggle: every delimiter byte flips between quoted
// and unquoted, so a doubled delimiter inside a quoted field cancels itself
// out (open then immediately close). This deliberately does not implement
// full RFC 4180 escaping.
type LineReader struct {
	in    *bufio.Reader
	delim byte
}

// CreateLineReader returns a new LineReader over r, validating conf and
// applying its defaults first
func CreateLineReader(r io.Reader, conf *Conf) (*LineReader, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &LineReader{
		in:    bufio.NewReader(r),
		delim: byte(conf.Delimiter),
	}, nil
}

// ReadLine clears row, appends the next logical line's bytes to it (without
// the terminating newline), and returns the number of bytes consumed from the
// stream, which includes the terminator when one is present. It returns
// io.EOF when no data remains. Reaching end of stream while a quote is still
// open is not an error: the accumulated bytes are returned as the final
// logical line, and it is the record-level consumer's concern to surface a
// parsing error if that matters to it.
func (lr *LineReader) ReadLine(row *bytes.Buffer) (int, error) {
	row.Reset()
	consumed := 0
	quoted := false
	for {
		b, err := lr.in.ReadByte()
		if err == io.EOF {
			if consumed == 0 {
				return 0, io.EOF
			}
			return consumed, nil
		}
		if err != nil {
			return consumed, err
		}
		consumed++
		switch {
		case b == lr.delim:
			quoted = !quoted
			row.WriteByte(b)
		case b == '\n' && !quoted:
			return consumed, nil
		default:
			row.WriteByte(b)
		}
	}
}
