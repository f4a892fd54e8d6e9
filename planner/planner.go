package planner

import (
	"bytes"
	"io"
	"log"

	"github.com/hashicorp/go-multierror"

	csvsplit "github.com/go-csvsplit/csvsplit"
	"github.com/go-csvsplit/csvsplit/csvline"
	"github.com/go-csvsplit/csvsplit/errors"
	"github.com/go-csvsplit/csvsplit/internal/util"
	"github.com/go-csvsplit/csvsplit/logging"
)

// Conf configures a Planner
type Conf struct {
	Delimiter        rune  // The character quoting a field. Cannot be equal to the Separator. Defaults to "
	Separator        rune  // The character separating fields within a record. Cannot be equal to the Delimiter. Defaults to ,
	LinesPerSplit    int   // The number of logical lines covered by each Split. Negative values are rejected rather than clamped. Defaults to 1
	MaxParallelFiles int64 // The maximum number of files planned concurrently by PlanParallel. Defaults to 4
}

// Planner produces the ordered list of Splits for the files of a DataSource
type Planner struct {
	conf *Conf
}

// CreatePlanner validates conf, applies defaults, and returns a new Planner.
// Validation happens eagerly, before any file is touched: an invalid
// configuration aborts the whole run with no partial work attempted, and
// every violation is reported, aggregated into a single error.
func CreatePlanner(conf *Conf) (*Planner, error) {
	if conf.LinesPerSplit == 0 {
		conf.LinesPerSplit = 1
	}
	if conf.MaxParallelFiles == 0 {
		conf.MaxParallelFiles = 4
	}
	var result *multierror.Error
	lineConf := &csvline.Conf{Delimiter: conf.Delimiter, Separator: conf.Separator}
	if err := lineConf.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	conf.Delimiter = lineConf.Delimiter
	conf.Separator = lineConf.Separator
	if conf.LinesPerSplit < 0 {
		result = multierror.Append(result, errors.InvalidLinesPerSplitError{Value: conf.LinesPerSplit})
	}
	if result != nil {
		result.ErrorFormat = util.FormatMultiError
		return nil, result
	}
	return &Planner{conf: conf}, nil
}

// PlanFile produces the ordered list of Splits for a single file. Each Split
// covers exactly LinesPerSplit logical lines, except possibly the last, which
// covers whatever remains. The emitted ranges partition [0, fileSize) with no
// gaps and no overlaps. The file's stream is released on every exit path.
func (p *Planner) PlanFile(f csvsplit.File) (splits []csvsplit.Split, err error) {
	status := f.Status()
	stream, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			log.Printf("%s: couldn't close file %s: %v", logging.LogLevelToString(logging.WarnLevel), status.Path, cerr)
		}
	}()
	lr, err := csvline.CreateLineReader(stream, &csvline.Conf{Delimiter: p.conf.Delimiter, Separator: p.conf.Separator})
	if err != nil {
		return nil, err
	}
	var row bytes.Buffer
	var begin, length int64
	numLines := 0
	for {
		size, err := lr.ReadLine(&row)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		numLines++
		length += int64(size)
		if numLines == p.conf.LinesPerSplit {
			splits = append(splits, csvsplit.Split{Path: status.Path, Offset: begin, Length: length})
			begin += length
			length = 0
			numLines = 0
		}
	}
	// a partial trailing group still becomes a Split, so no lines are dropped
	if numLines != 0 {
		splits = append(splits, csvsplit.Split{Path: status.Path, Offset: begin, Length: length})
	}
	return splits, nil
}

// Plan produces Splits for every file enumerated by source, in enumeration
// order. Files are planned one at a time; any failure aborts the whole run.
func (p *Planner) Plan(source csvsplit.DataSource) ([]csvsplit.Split, error) {
	fm, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	var splits []csvsplit.Split
	for fm.HasNext() {
		fileSplits, err := p.PlanFile(fm.Next())
		if err != nil {
			return nil, err
		}
		splits = append(splits, fileSplits...)
	}
	return splits, nil
}
