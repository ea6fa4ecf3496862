// Package svgvector converts SVG icons into Android VectorDrawable XML.
//
// Only a sub-set of SVG is understood: `path` elements are copied as is
// and `ellipse` elements are turned into paths, wherever they are nested.
// Everything else is skipped. Large viewports are scaled down to an
// icon friendly size.
package svgvector

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Conversion is the outcome of a successful conversion.
type Conversion struct {
	Viewport Viewport     // normalized viewport
	Records  []PathRecord // normalized paths, in document order
	Markup   string       // VectorDrawable document, without trailing newline
}

// Translate computes the normalized geometry of the document rooted at root.
func Translate(root *Element, opts Options) (Viewport, []PathRecord, error) {
	vp, err := ViewportOf(root, opts)
	if err != nil {
		return vp, nil, err
	}
	records, err := Extract(root, opts)
	if err != nil {
		return vp, nil, err
	}
	vp, records = Normalize(vp, records, opts)
	return vp, records, nil
}

// ConvertBytes runs the whole conversion on an in memory document.
// Errors are either *ParseError or *ConversionError.
func ConvertBytes(data []byte, opts Options) (*Conversion, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ConversionError{Err: ErrEmptyInput}
	}
	root, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	vp, records, err := Translate(root, opts)
	if err != nil {
		return nil, asConversionError(err)
	}
	return &Conversion{
		Viewport: vp,
		Records:  records,
		Markup:   EmitString(vp, records, opts),
	}, nil
}

// ConvertString is ConvertBytes for a string input and output.
func ConvertString(svg string, opts Options) (string, error) {
	c, err := ConvertBytes([]byte(svg), opts)
	if err != nil {
		return "", err
	}
	return c.Markup, nil
}

// Convert reads a whole SVG document from r and writes its VectorDrawable
// equivalent to w. Nothing is written to w when the conversion fails.
func Convert(r io.Reader, w io.Writer, opts Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &ConversionError{Err: errors.Wrap(err, "reading input")}
	}
	c, err := ConvertBytes(data, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, c.Markup+"\n")
	return err
}
