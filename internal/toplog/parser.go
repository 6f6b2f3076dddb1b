package toplog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/logging"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1024 * 1024

// Stats counts what the parser saw in one pass.
type Stats struct {
	Lines          int // lines read, including blank ones
	BlankLines     int
	HeaderRows     int
	DataRows       int
	TruncatedCells int // row fields past the end of the active header
	MissingCells   int // header columns with no field in a short row
	OrphanRows     int // data rows seen before any header
}

// Result is the outcome of a parse.
type Result struct {
	Dataset Dataset
	Stats   Stats
}

// Option configures Parse and ParseFile.
type Option func(*options)

type options struct {
	logger logging.Logger
	source string
}

// WithLogger routes malformed-row reports to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSource names the input in errors and log entries.
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

// ParseFile opens path and parses it.
func ParseFile(path string, opts ...Option) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, apperrors.FileError{Path: path, Op: "open", Cause: err}
	}
	defer f.Close()

	return Parse(f, append([]Option{WithSource(path)}, opts...)...)
}

// Parse reads a top log from r in a single forward pass.
func Parse(r io.Reader, opts ...Option) (Result, error) {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	acc := newAccumulator()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		issue := acc.consume(scanner.Text())
		if issue.kind != rowOK {
			o.report(lineNo, issue)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			lineNo++
		}
		return Result{}, apperrors.ParseError{Path: o.source, Line: lineNo, Cause: err}
	}

	return Result{Dataset: acc.data, Stats: acc.stats}, nil
}

func (o options) report(line int, issue rowIssue) {
	fields := []logging.Field{
		logging.Int("line", line),
		logging.Int("fields", issue.fields),
		logging.Int("columns", issue.columns),
	}
	if o.source != "" {
		fields = append(fields, logging.String("file", o.source))
	}
	switch issue.kind {
	case rowLong:
		o.logger.Warn("row has more fields than header, extra fields dropped", fields...)
	case rowShort:
		o.logger.Warn("row has fewer fields than header, missing columns left without a value", fields...)
	case rowOrphan:
		o.logger.Warn("data row before any header, row dropped", fields...)
	}
}

type rowKind uint8

const (
	rowOK rowKind = iota
	rowLong
	rowShort
	rowOrphan
)

type rowIssue struct {
	kind    rowKind
	fields  int
	columns int
}

// accumulator carries the parse state from one line to the next.
type accumulator struct {
	header []string
	data   Dataset
	stats  Stats
}

func newAccumulator() *accumulator {
	return &accumulator{data: NewDataset()}
}

func (a *accumulator) consume(line string) rowIssue {
	a.stats.Lines++

	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if line == "" {
		a.stats.BlankLines++
		return rowIssue{}
	}

	tokens := strings.Fields(line)
	if !IsSampleIndex(tokens[0]) {
		a.header = tokens
		a.stats.HeaderRows++
		return rowIssue{}
	}

	a.stats.DataRows++
	issue := rowIssue{fields: len(tokens), columns: len(a.header)}
	switch {
	case len(a.header) == 0:
		a.stats.OrphanRows++
		issue.kind = rowOrphan
		return issue
	case len(tokens) > len(a.header):
		a.stats.TruncatedCells += len(tokens) - len(a.header)
		issue.kind = rowLong
	case len(tokens) < len(a.header):
		a.stats.MissingCells += len(a.header) - len(tokens)
		issue.kind = rowShort
	}

	n := min(len(tokens), len(a.header))
	for i := 0; i < n; i++ {
		a.data.append(a.header[i], ParseValue(tokens[i]))
	}
	return issue
}

// IsSampleIndex reports whether token is a non-empty run of ASCII digits,
// which marks a data row.
func IsSampleIndex(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
