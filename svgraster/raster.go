// Implements a raster preview of converted icons,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"encoding/xml"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/mode89/svg2vector/svgvector"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultSize is the side, in pixels, of a preview when none is given.
const DefaultSize = 128

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="`)
	xml.EscapeText(b, []byte(value))
	b.WriteString(`"`)
}

// PreviewSVG builds a plain SVG document drawing exactly what the
// VectorDrawable output draws: the normalized viewport and the paths,
// truncated as they are emitted.
func PreviewSVG(vp svgvector.Viewport, records []svgvector.PathRecord, maxPathLength int) string {
	if maxPathLength <= 2 {
		maxPathLength = svgvector.DefaultOptions().MaxPathLength
	}
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	writeAttr(&b, "viewBox", "0 0 "+ftoa(vp.Width)+" "+ftoa(vp.Height))
	b.WriteString(">\n")
	for _, rec := range records {
		b.WriteString("<path")
		writeAttr(&b, "fill", rec.FillColor)
		writeAttr(&b, "d", svgvector.TruncatePathData(rec.PathData, maxPathLength))
		b.WriteString("/>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// RasterToImage renders the converted icon centered in a size x size image,
// keeping its aspect ratio.
func RasterToImage(vp svgvector.Viewport, records []svgvector.PathRecord, size int) (*image.RGBA, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, errors.Errorf("preview: empty viewport %vx%v", vp.Width, vp.Height)
	}
	doc := PreviewSVG(vp, records, 0)
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "preview")
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	larger := w
	if h > larger {
		larger = h
	}
	scale := float64(size) / larger
	outW, outH := int(w*scale), int(h*scale)
	offsetX, offsetY := (size-outW)/2, (size-outH)/2
	icon.SetTarget(float64(offsetX), float64(offsetY), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encoding preview")
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
