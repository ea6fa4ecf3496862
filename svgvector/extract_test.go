package svgvector

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, svg string) *Element {
	t.Helper()
	root, err := ParseString(svg)
	require.NoError(t, err)
	return root
}

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestExtractPath(t *testing.T) {
	root := mustParse(t, `<svg viewBox="0 0 24 24"><path d="M0,0L24,24" fill="#FF0000"/></svg>`)
	records, err := Extract(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []PathRecord{{PathData: "M0,0L24,24", FillColor: "#FF0000"}}, records)
}

func TestExtractOrder(t *testing.T) {
	root := mustParse(t, `<svg>
		<path d="M1" fill="#000001"/>
		<g>
			<rect width="4" height="4" fill="#000000"/>
			<g><path d="M2" fill="#000002"/></g>
			<ellipse rx="1" ry="1" fill="#000003"/>
		</g>
		<text><path d="M4" fill="#000004"/></text>
		<path d="M5" fill="#000005"/>
	</svg>`)
	records, err := Extract(root, Options{})
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, rec := range records {
		assert.Equal(t, "#00000"+string(rune('1'+i)), rec.FillColor)
	}
	assert.Equal(t, "M-1.0,0.0A1.0,1.0 0 1,1 1.0,0.0A1.0,1.0 0 1,1 -1.0,0.0Z", records[2].PathData)
}

func TestExtractDropsUnfilled(t *testing.T) {
	root := mustParse(t, `<svg>
		<path d="M0,0L1,1"/>
		<path d="M0,0L1,1" fill="none"/>
		<path d="M0,0L1,1" style="fill:none;stroke:#000"/>
		<path fill="red"/>
		<path d="" fill="red"/>
		<ellipse cx="1" cy="1" rx="1" ry="1" stroke="red"/>
	</svg>`)
	records, err := Extract(root, Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExtractEllipse(t *testing.T) {
	// missing geometry defaults to 0
	root := mustParse(t, `<svg><ellipse rx="2" ry="1" fill="red"/></svg>`)
	records, err := Extract(root, Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "M-2.0,0.0A2.0,1.0 0 1,1 2.0,0.0A2.0,1.0 0 1,1 -2.0,0.0Z", records[0].PathData)

	// unsupported transforms are ignored
	root = mustParse(t, `<svg><ellipse cx="5" cy="5" rx="2" ry="1" fill="red" transform="rotate(30)"/></svg>`)
	records, err = Extract(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, EllipseArcPath(5, 5, 2, 1), records[0].PathData)

	// matrix transforms turn the ellipse into a polygon
	root = mustParse(t, `<svg><ellipse cx="5" cy="5" rx="2" ry="1" fill="red" transform="matrix(1 0 0 1 10 0)"/></svg>`)
	records, err = Extract(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, EllipsePolygonPath(5, 5, 2, 1, Matrix2D{A: 1, D: 1, E: 10}), records[0].PathData)
	assert.Contains(t, records[0].PathData, "M17.00,5.00L")
}

func TestExtractInvalidNumbers(t *testing.T) {
	for _, svg := range []string{
		`<svg><ellipse cx="abc" rx="1" ry="1" fill="red"/></svg>`,
		`<svg><ellipse cx="" rx="1" ry="1" fill="red"/></svg>`,
		`<svg><g><ellipse rx="1" ry="1" fill="red" transform="matrix(1 0 0 x 0 0)"/></g></svg>`,
	} {
		_, err := Extract(mustParse(t, svg), Options{})
		require.Error(t, err, svg)
		var ce *ConversionError
		assert.True(t, errors.As(err, &ce), svg)
	}
}

func TestExtractErrorModes(t *testing.T) {
	const svg = `<svg><rect width="1" height="1" fill="red"/><path d="M0" fill="red"/></svg>`

	buf := captureLog(t)
	records, err := Extract(mustParse(t, svg), Options{ErrorMode: IgnoreErrorMode})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Empty(t, buf.String())

	records, err = Extract(mustParse(t, svg), Options{ErrorMode: WarnErrorMode})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Contains(t, buf.String(), "[WARN] Cannot process svg element rect")

	_, err = Extract(mustParse(t, svg), Options{ErrorMode: StrictErrorMode})
	require.Error(t, err)
	var ce *ConversionError
	assert.True(t, errors.As(err, &ce))
}

func TestExtractNormalizeColors(t *testing.T) {
	root := mustParse(t, `<svg><path d="M0" fill="blue"/><path d="M1" style="fill:#abc"/></svg>`)

	records, err := Extract(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, "blue", records[0].FillColor)

	records, err = Extract(root, Options{NormalizeColors: true})
	require.NoError(t, err)
	assert.Equal(t, "#0000FF", records[0].FillColor)
	assert.Equal(t, "#AABBCC", records[1].FillColor)
}

func TestErrorModeText(t *testing.T) {
	var m ErrorMode
	require.NoError(t, m.UnmarshalText([]byte("Strict")))
	assert.Equal(t, StrictErrorMode, m)
	assert.Equal(t, "strict", m.String())
	assert.Error(t, m.UnmarshalText([]byte("loud")))
}

func TestExtractNamespacedFill(t *testing.T) {
	root := mustParse(t, `<svg xmlns:foo="http://example.com/foo">`+
		`<ellipse cx="10" cy="10" rx="5" ry="5" fill="red" foo:fill="none"/></svg>`)
	records, err := Extract(root, Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "red", records[0].FillColor)
}
