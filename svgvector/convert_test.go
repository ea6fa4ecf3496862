package svgvector

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diff(expected, got string) string {
	d, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(got),
		FromFile: "expected",
		ToFile:   "got",
		Context:  3,
	})
	return d
}

func TestConvertGolden(t *testing.T) {
	for _, name := range []string{"basic", "ellipse", "layers", "illustrator"} {
		t.Run(name, func(t *testing.T) {
			in, err := os.Open(filepath.Join("testdata", name+".svg"))
			require.NoError(t, err)
			defer in.Close()
			expected, err := os.ReadFile(filepath.Join("testdata", name+".xml"))
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, Convert(in, &out, Options{}))
			if got := out.String(); got != string(expected) {
				t.Errorf("unexpected output for %s:\n%s", name, diff(string(expected), got))
			}
		})
	}
}

func TestConvertEmpty(t *testing.T) {
	for _, input := range []string{"", "  \n\t "} {
		var out bytes.Buffer
		err := Convert(strings.NewReader(input), &out, Options{})
		require.Error(t, err)
		var ce *ConversionError
		assert.True(t, errors.As(err, &ce))
		assert.True(t, errors.Is(err, ErrEmptyInput))
		assert.Equal(t, "error converting SVG: no SVG content provided", err.Error())
		assert.Zero(t, out.Len())
	}
}

func TestConvertMalformed(t *testing.T) {
	var out bytes.Buffer
	err := Convert(strings.NewReader("<svg><path d='M0'></svg>"), &out, Options{})
	require.Error(t, err)
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.True(t, strings.HasPrefix(err.Error(), "error parsing SVG: "))
	assert.Zero(t, out.Len())

	_, err = ConvertString(`<svg><ellipse cx="x" rx="1" ry="1" fill="red"/></svg>`, Options{})
	var ce *ConversionError
	assert.True(t, errors.As(err, &ce))
}

func TestConvertNoFill(t *testing.T) {
	got, err := ConvertString(`<svg viewBox="0 0 24 24"><path d="M0,0L24,24" style="fill:none;stroke:#000"/></svg>`, Options{})
	require.NoError(t, err)
	assert.NotContains(t, got, "<path")
	assert.True(t, strings.HasSuffix(got, "</vector>"))
}

func TestConvertBytes(t *testing.T) {
	c, err := ConvertBytes([]byte(`<svg width="200" height="100"><path d="M100,50" fill="red"/></svg>`), Options{})
	require.NoError(t, err)
	assert.Equal(t, Viewport{48, 24}, c.Viewport)
	assert.Equal(t, []PathRecord{{PathData: "M24.0,12.0", FillColor: "red"}}, c.Records)
	assert.Equal(t, EmitString(c.Viewport, c.Records, Options{}), c.Markup)
}

func TestConvertOptions(t *testing.T) {
	opts, err := DecodeOptions(`
target_viewport = 24
normalize_colors = true
icon_width = "48dp"
error_mode = "warn"
`)
	require.NoError(t, err)
	assert.Equal(t, 24., opts.TargetViewport)
	assert.Equal(t, 1500, opts.MaxPathLength)
	assert.Equal(t, WarnErrorMode, opts.ErrorMode)

	captureLog(t)
	got, err := ConvertString(`<svg width="200" height="100"><rect/><path d="M0" fill="blue"/></svg>`, opts)
	require.NoError(t, err)
	assert.Contains(t, got, `android:viewportWidth="24.0"`)
	assert.Contains(t, got, `android:viewportHeight="12.0"`)
	assert.Contains(t, got, `android:width="48dp"`)
	assert.Contains(t, got, `android:fillColor="#0000FF"`)

	opts, err = DecodeOptions(`error_mode = "strict"`)
	require.NoError(t, err)
	_, err = ConvertString(`<svg><rect/></svg>`, opts)
	var ce *ConversionError
	assert.True(t, errors.As(err, &ce))

	_, err = DecodeOptions(`error_mode = "loud"`)
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svg2vector.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_path_length = 200\nchunk_size = 50\n"), 0o644))
	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 200, opts.MaxPathLength)
	assert.Equal(t, 50, opts.ChunkSize)
	assert.Equal(t, 80, opts.WrapThreshold)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
