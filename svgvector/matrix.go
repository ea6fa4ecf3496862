package svgvector

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Matrix2D is an affine transform mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F), as written in `matrix(a b c d e f)`.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the transform used when none (or an unsupported one) is given.
var Identity = Matrix2D{A: 1, D: 1}

// Transform applies m to the point (x, y).
func (m Matrix2D) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// IsIdentity is true when m is exactly Identity.
func (m Matrix2D) IsIdentity() bool { return m == Identity }

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseNumbers(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// matrixCall finds the first `matrix(...)` of a transform list.
var matrixCall = regexp.MustCompile(`matrix\(([^)]+)\)`)

// ParseTransform resolves a `transform` attribute. Only the matrix form
// is interpreted: the first `matrix(...)` is used when it holds six values.
// Everything else (translate, scale, rotate, skew, or nothing at all)
// resolves to Identity without error.
// A non numeric value inside `matrix(...)` is an error.
func ParseTransform(v string) (Matrix2D, error) {
	match := matrixCall.FindStringSubmatch(v)
	if match == nil {
		return Identity, nil
	}
	points, err := parseNumbers(match[1])
	if err != nil {
		return Identity, errors.Wrap(err, "transform")
	}
	if len(points) != 6 {
		return Identity, nil
	}
	return Matrix2D{
		A: points[0],
		B: points[1],
		C: points[2],
		D: points[3],
		E: points[4],
		F: points[5],
	}, nil
}
