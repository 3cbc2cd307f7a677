package track

import (
	"fmt"
	"strconv"
)

// FormatError reports a track file whose structure doesn't match the
// format: a missing or unexpected keyword, a wrong number of fields or
// records, or a premature end of input.
type FormatError struct {
	// Line is the 1-based line number at which the problem was detected,
	// or 0 if the input wasn't read from a file.
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return linePrefix(e.Line) + e.Msg
}

// ParseError reports a numeric token in a track file that couldn't be
// converted.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%sinvalid number %s: %v", linePrefix(e.Line), strconv.Quote(e.Token), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func linePrefix(line int) string {
	if line == 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", line)
}
