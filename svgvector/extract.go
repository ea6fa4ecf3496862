package svgvector

import (
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PathRecord is one filled outline of the output.
type PathRecord struct {
	PathData  string // SVG path mini-language
	FillColor string // color token, as found in the source unless normalized
}

// shapeFunc computes the path data of a recognized element.
type shapeFunc func(e *Element) (string, error)

var shapeFuncs = map[string]shapeFunc{
	"path":    pathF,
	"ellipse": ellipseF,
}

// unsupportedShapes are drawable in SVG but not converted.
// They are only traversed for children, as any other element.
var unsupportedShapes = map[string]bool{
	"rect":     true,
	"circle":   true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"text":     true,
	"use":      true,
	"image":    true,
}

func pathF(e *Element) (string, error) { return e.Attrs["d"], nil }

func ellipseF(e *Element) (string, error) {
	var vals [4]float64
	for i, name := range [...]string{"cx", "cy", "rx", "ry"} {
		v, ok := e.Attr(name)
		if !ok {
			continue // missing geometry defaults to 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", errors.Wrapf(err, "ellipse attribute %s", name)
		}
		vals[i] = f
	}
	cx, cy, rx, ry := vals[0], vals[1], vals[2], vals[3]

	m, err := ParseTransform(e.Attrs["transform"])
	if err != nil {
		return "", errors.Wrap(err, "ellipse")
	}
	if !m.IsIdentity() {
		return EllipsePolygonPath(cx, cy, rx, ry, m), nil
	}
	return EllipseArcPath(cx, cy, rx, ry), nil
}

// Extract walks the document rooted at root and returns one record
// per filled path or ellipse, in document order.
func Extract(root *Element, opts Options) ([]PathRecord, error) {
	var records []PathRecord
	err := root.Walk(func(e *Element) error {
		df, ok := shapeFuncs[e.Tag]
		if !ok {
			if unsupportedShapes[e.Tag] {
				errStr := "Cannot process svg element " + e.Tag
				if opts.ErrorMode == StrictErrorMode {
					return errors.New(errStr)
				} else if opts.ErrorMode == WarnErrorMode {
					log.Println("[WARN] " + errStr)
				}
			}
			return nil
		}
		d, err := df(e)
		if err != nil {
			return err
		}
		fill := FillColor(e)
		if d == "" || fill == "" {
			if opts.ErrorMode == WarnErrorMode {
				log.Printf("[DEBUG] skipping unfilled or empty <%s>", e.Tag)
			}
			return nil
		}
		if opts.NormalizeColors {
			fill = NormalizeColor(fill)
		}
		records = append(records, PathRecord{PathData: d, FillColor: fill})
		return nil
	})
	if err != nil {
		return nil, asConversionError(err)
	}
	return records, nil
}
