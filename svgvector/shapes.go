package svgvector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// ellipseStep is the angle, in degrees, between two samples of a
// transformed ellipse.
const ellipseStep = 5

// formatFloat renders v with the shortest representation that reads back
// to v. Integral values keep a ".0" suffix and very small or very large
// magnitudes switch to exponent notation, so 24 is "24.0" and 0.00001 is
// "1e-05".
func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// EllipseArcPath returns the exact outline of an axis aligned ellipse,
// drawn as two half elliptical arcs.
func EllipseArcPath(cx, cy, rx, ry float64) string {
	left, right, y := formatFloat(cx-rx), formatFloat(cx+rx), formatFloat(cy)
	radii := formatFloat(rx) + "," + formatFloat(ry)
	return "M" + left + "," + y +
		"A" + radii + " 0 1,1 " + right + "," + y +
		"A" + radii + " 0 1,1 " + left + "," + y + "Z"
}

// EllipsePolygonPath samples the ellipse boundary every 5 degrees, maps
// each point through m and joins them in a closed polyline.
func EllipsePolygonPath(cx, cy, rx, ry float64, m Matrix2D) string {
	var b strings.Builder
	for deg := 0; deg < 360; deg += ellipseStep {
		angle := float64(deg) * math.Pi / 180
		x, y := m.Transform(cx+rx*math.Cos(angle), cy+ry*math.Sin(angle))
		cmd := 'L'
		if deg == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%.2f,%.2f", cmd, x, y)
	}
	b.WriteByte('Z')
	return b.String()
}
