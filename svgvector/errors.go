package svgvector

import "github.com/pkg/errors"

// ErrEmptyInput is returned when the input holds nothing but whitespace.
var ErrEmptyInput = errors.New("no SVG content provided")

// ParseError is returned when the input is not well-formed XML.
// No output is produced in that case.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "error parsing SVG: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError is returned for any failure after parsing, such as
// an attribute which should be a number and is not.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return "error converting SVG: " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }

// asConversionError wraps err, unless it already has one of the two kinds.
func asConversionError(err error) error {
	if err == nil {
		return nil
	}
	var (
		pe *ParseError
		ce *ConversionError
	)
	if errors.As(err, &pe) || errors.As(err, &ce) {
		return err
	}
	return &ConversionError{Err: err}
}
