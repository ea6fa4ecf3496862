package svgvector

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ErrorMode is the strategy used when an element is found that
// is drawable in SVG but has no conversion.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each skipped element.
	WarnErrorMode
	// StrictErrorMode aborts the conversion on the first unsupported element.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// UnmarshalText accepts "ignore", "warn" and "strict".
func (m *ErrorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "ignore", "":
		*m = IgnoreErrorMode
	case "warn":
		*m = WarnErrorMode
	case "strict":
		*m = StrictErrorMode
	default:
		return errors.Errorf("unknown error mode %q", text)
	}
	return nil
}

// Options tunes the conversion. Zero fields take the value
// of DefaultOptions, so the zero Options is usable.
type Options struct {
	// Extent used when the root element gives none.
	DefaultWidth  float64 `toml:"default_width"`
	DefaultHeight float64 `toml:"default_height"`

	// Viewports whose larger side exceeds RescaleThreshold are scaled
	// so that this side becomes TargetViewport.
	RescaleThreshold float64 `toml:"rescale_threshold"`
	TargetViewport   float64 `toml:"target_viewport"`

	MaxPathLength int `toml:"max_path_length"`
	WrapThreshold int `toml:"wrap_threshold"`
	ChunkSize     int `toml:"chunk_size"`

	IconWidth  string `toml:"icon_width"`
	IconHeight string `toml:"icon_height"`

	// NormalizeColors rewrites named and rgb() colors as #RRGGBB.
	NormalizeColors bool      `toml:"normalize_colors"`
	ErrorMode       ErrorMode `toml:"error_mode"`
}

// DefaultOptions returns the settings of a plain conversion.
func DefaultOptions() Options {
	return Options{
		DefaultWidth:     100,
		DefaultHeight:    100,
		RescaleThreshold: 100,
		TargetViewport:   48,
		MaxPathLength:    1500,
		WrapThreshold:    80,
		ChunkSize:        100,
		IconWidth:        "24dp",
		IconHeight:       "24dp",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DefaultWidth <= 0 {
		o.DefaultWidth = def.DefaultWidth
	}
	if o.DefaultHeight <= 0 {
		o.DefaultHeight = def.DefaultHeight
	}
	if o.RescaleThreshold <= 0 {
		o.RescaleThreshold = def.RescaleThreshold
	}
	if o.TargetViewport <= 0 {
		o.TargetViewport = def.TargetViewport
	}
	if o.MaxPathLength <= 2 {
		o.MaxPathLength = def.MaxPathLength
	}
	if o.WrapThreshold <= 0 {
		o.WrapThreshold = def.WrapThreshold
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = def.ChunkSize
	}
	if o.IconWidth == "" {
		o.IconWidth = def.IconWidth
	}
	if o.IconHeight == "" {
		o.IconHeight = def.IconHeight
	}
	return o
}

// LoadOptions reads a TOML file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return opts, errors.Wrapf(err, "loading options from %s", path)
	}
	return opts, nil
}

// DecodeOptions is LoadOptions for an in memory document.
func DecodeOptions(data string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.Decode(data, &opts); err != nil {
		return opts, errors.Wrap(err, "decoding options")
	}
	return opts, nil
}
