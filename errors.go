package iso8601

import (
	"errors"

	"lab.nexedi.com/kirr/go123/xfmt"

	"github.com/imarsman/iso8601/pkg/utility"
)

var (
	// ErrEndOfInput a required token was expected past the end of the input
	ErrEndOfInput = errors.New("unexpected end of input")
	// ErrNotDigit an integer token could not be parsed
	ErrNotDigit = errors.New("value is not an integer")
	// ErrNotDouble a numeric token had more than one fractional separator
	ErrNotDouble = errors.New("value is not a decimal number")
	// ErrInvalidFormat the input does not match any supported ISO-8601 form
	ErrInvalidFormat = errors.New("invalid ISO-8601 format")
)

// ParseError describes where parsing of an input failed. Err is always one of
// the package sentinel errors so callers can test with errors.Is.
type ParseError struct {
	Func   string // function reporting the failure
	Input  string // trimmed input
	Offset int    // rune offset of the cursor at failure
	Err    error
}

// Error avoids fmt.Sprintf allocations in the same way as the offset helpers.
func (e *ParseError) Error() string {
	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S("iso8601.").S(e.Func).S(": ").S(e.Err.Error()).
		S(" at offset ").D(e.Offset).S(" in input '").S(e.Input).C('\'')

	return utility.BytesToString(xfmtBuf.Bytes()...)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
