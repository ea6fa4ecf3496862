package svgvector

import (
	"log"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Viewport is the coordinate extent of the icon, in user units.
type Viewport struct {
	Width, Height float64
}

var (
	// everything but digits and dots, to drop units as in "48px"
	unitChars = regexp.MustCompile(`[^\d.]`)
	// numbers of the path data; exponents and flags are not told apart
	pathNumber = regexp.MustCompile(`-?\d+\.?\d*`)
)

// ViewportOf reads the source extent from the root element: the viewBox
// size when there is one, else its width and height, units stripped.
func ViewportOf(root *Element, opts Options) (Viewport, error) {
	opts = opts.withDefaults()
	def := Viewport{Width: opts.DefaultWidth, Height: opts.DefaultHeight}

	if viewBox := root.Attrs["viewBox"]; viewBox != "" {
		parts := splitOnCommaOrSpace(viewBox)
		if len(parts) < 4 {
			return def, nil
		}
		w, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return def, asConversionError(errors.Wrap(err, "viewBox width"))
		}
		h, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return def, asConversionError(errors.Wrap(err, "viewBox height"))
		}
		return Viewport{Width: w, Height: h}, nil
	}

	w, err := parseLength(root, "width", def.Width)
	if err != nil {
		return def, asConversionError(err)
	}
	h, err := parseLength(root, "height", def.Height)
	if err != nil {
		return def, asConversionError(err)
	}
	return Viewport{Width: w, Height: h}, nil
}

func parseLength(root *Element, name string, def float64) (float64, error) {
	v, ok := root.Attr(name)
	if !ok {
		return def, nil
	}
	v = unitChars.ReplaceAllString(v, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, errors.Wrapf(err, "root %s", name)
	}
	return f, nil
}

// ScalePathData multiplies every number of the path data d by factor,
// leaving commands and separators untouched.
func ScalePathData(d string, factor float64) string {
	return pathNumber.ReplaceAllStringFunc(d, func(num string) string {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return num
		}
		return formatFloat(f * factor)
	})
}

// Normalize brings large viewports down to the target size. When the
// larger side of vp exceeds the threshold, both sides and all path data
// are scaled by the same factor. Otherwise vp and records are returned as is.
// The input slice is never modified.
func Normalize(vp Viewport, records []PathRecord, opts Options) (Viewport, []PathRecord) {
	opts = opts.withDefaults()
	out := make([]PathRecord, len(records))
	copy(out, records)

	larger := vp.Width
	if vp.Height > larger {
		larger = vp.Height
	}
	if larger <= opts.RescaleThreshold {
		return vp, out
	}

	factor := opts.TargetViewport / larger
	if opts.ErrorMode == WarnErrorMode {
		log.Printf("[DEBUG] rescaling %sx%s viewport by %s",
			formatFloat(vp.Width), formatFloat(vp.Height), formatFloat(factor))
	}
	vp.Width *= factor
	vp.Height *= factor
	for i := range out {
		out[i].PathData = ScalePathData(out[i].PathData, factor)
	}
	return vp, out
}
