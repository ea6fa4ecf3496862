package svgvector

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FillColor resolves the fill of e: a `fill:` declaration in the
// `style` attribute wins over the `fill` attribute. The empty string
// means the element is not filled, which is also the case for `none`.
func FillColor(e *Element) string {
	fill := strings.TrimSpace(e.Attrs["fill"])
	if style, ok := e.Attr("style"); ok {
		for _, pair := range strings.Split(style, ";") {
			pair = strings.TrimSpace(pair)
			if !strings.HasPrefix(pair, "fill:") {
				continue
			}
			fill = strings.TrimSpace(strings.SplitN(pair, ":", 2)[1])
			break
		}
	}
	if fill == "none" {
		return ""
	}
	return fill
}

// NormalizeColor rewrites the SVG color v in a form VectorDrawable
// understands: names and rgb() triples become #RRGGBB and short hex
// colors are expanded. Anything else is returned unchanged.
func NormalizeColor(v string) string {
	lower := strings.ToLower(strings.TrimSpace(v))
	if c, ok := colornames.Map[lower]; ok {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	if strings.HasPrefix(lower, "#") && len(lower) == 4 && isHex(lower[1:]) {
		return strings.ToUpper(string([]byte{'#',
			lower[1], lower[1], lower[2], lower[2], lower[3], lower[3]}))
	}
	if cStr := strings.TrimPrefix(lower, "rgb("); cStr != lower && strings.HasSuffix(cStr, ")") {
		vals := strings.Split(strings.TrimSuffix(cStr, ")"), ",")
		if len(vals) != 3 {
			return v
		}
		var cvals [3]uint8
		for i := range cvals {
			c, err := parseColorValue(vals[i])
			if err != nil {
				return v
			}
			cvals[i] = c
		}
		return fmt.Sprintf("#%02X%02X%02X", cvals[0], cvals[1], cvals[2])
	}
	return v
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// parseColorValue reads one rgb() component, either an integer
// or a percentage, clamped to [0, 255].
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return 0, err
		}
		return clampColor(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return clampColor(n), nil
}

func clampColor(n int) uint8 {
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}
