package svgvector

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const androidNamespace = "http://schemas.android.com/apk/res/android"

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// TruncatePathData bounds d to max characters. A longer path is cut back
// to the last space before the limit and closed with " Z", so the result
// always stays within max and remains valid path syntax.
func TruncatePathData(d string, max int) string {
	if utf8.RuneCountInString(d) <= max {
		return d
	}
	cut := d[:runeOffset(d, max-2)]
	if i := strings.LastIndexByte(cut, ' '); i >= 0 {
		cut = cut[:i]
	}
	return cut + " Z"
}

// runeOffset returns the byte offset of the n-th character of s,
// or len(s) when s is shorter.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// chunks splits s in pieces of at most size characters.
func chunks(s string, size int) []string {
	var out []string
	for utf8.RuneCountInString(s) > size {
		i := runeOffset(s, size)
		out = append(out, s[:i])
		s = s[i:]
	}
	return append(out, s)
}

func writePath(b *strings.Builder, index int, rec PathRecord, opts Options) {
	fmt.Fprintf(b, "    <!-- Path %d -->\n", index)
	b.WriteString("    <path\n")
	fmt.Fprintf(b, "        android:fillColor=\"%s\"\n", attrEscaper.Replace(rec.FillColor))

	d := TruncatePathData(rec.PathData, opts.MaxPathLength)
	if utf8.RuneCountInString(d) <= opts.WrapThreshold {
		fmt.Fprintf(b, "        android:pathData=\"%s\"/>\n", attrEscaper.Replace(d))
		return
	}
	b.WriteString("        android:pathData=\"\n")
	parts := chunks(d, opts.ChunkSize)
	for i, chunk := range parts {
		b.WriteString("            ")
		// escaping each chunk on its own never splits an entity
		b.WriteString(attrEscaper.Replace(chunk))
		if i == len(parts)-1 {
			b.WriteString(`"/>`)
		}
		b.WriteByte('\n')
	}
}

// EmitString returns the VectorDrawable document for the given viewport
// and records, without trailing newline.
func EmitString(vp Viewport, records []PathRecord, opts Options) string {
	opts = opts.withDefaults()
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<vector xmlns:android="` + androidNamespace + `"` + "\n")
	fmt.Fprintf(&b, "    android:width=\"%s\"\n", attrEscaper.Replace(opts.IconWidth))
	fmt.Fprintf(&b, "    android:height=\"%s\"\n", attrEscaper.Replace(opts.IconHeight))
	fmt.Fprintf(&b, "    android:viewportWidth=\"%.1f\"\n", vp.Width)
	fmt.Fprintf(&b, "    android:viewportHeight=\"%.1f\">\n", vp.Height)
	b.WriteString("\n")
	for i, rec := range records {
		writePath(&b, i+1, rec, opts)
		b.WriteString("\n")
	}
	b.WriteString("</vector>")
	return b.String()
}

// Emit writes the VectorDrawable document to w, newline terminated.
func Emit(w io.Writer, vp Viewport, records []PathRecord, opts Options) error {
	_, err := io.WriteString(w, EmitString(vp, records, opts)+"\n")
	return err
}
