// Command svg2vector converts an SVG icon into an Android VectorDrawable.
//
//	cat input.svg | svg2vector > output.xml
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/mode89/svg2vector/svgraster"
	"github.com/mode89/svg2vector/svgvector"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var (
	source      = flag.String("in", pipeName, "Source SVG file")
	destination = flag.String("out", pipeName, "Destination VectorDrawable file")
	configFile  = flag.String("config", "", "TOML file overriding the conversion options")
	colors      = flag.Bool("colors", false, "Rewrite named and rgb() fill colors as #RRGGBB")
	mode        = flag.String("mode", "warn", "Unsupported elements handling: ignore, warn or strict")
	preview     = flag.String("preview", "", "Also write a PNG preview of the result to this file")
	previewSize = flag.Int("size", svgraster.DefaultSize, "Preview size in pixels")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func setupLogging(w io.Writer, verbose bool) {
	minLevel := logutils.LogLevel("WARN")
	if verbose {
		minLevel = "DEBUG"
	}
	log.SetFlags(0)
	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "WARN", "ERROR"},
		MinLevel: minLevel,
		Writer:   w,
	})
}

func loadOptions() (svgvector.Options, error) {
	opts := svgvector.DefaultOptions()
	if *configFile != "" {
		var err error
		if opts, err = svgvector.LoadOptions(*configFile); err != nil {
			return opts, err
		}
	}
	if *colors {
		opts.NormalizeColors = true
	}
	// an explicit -mode wins over the config file
	if *configFile == "" || isFlagSet("mode") {
		if err := opts.ErrorMode.UnmarshalText([]byte(*mode)); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func readInput(stdin io.Reader) ([]byte, error) {
	if *source == pipeName {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			flag.Usage()
			return nil, errors.New("no SVG content provided on standard input")
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(*source)
}

func writeOutput(stdout io.Writer, markup string) error {
	if *destination == pipeName {
		_, err := io.WriteString(stdout, markup+"\n")
		return err
	}
	return os.WriteFile(*destination, []byte(markup+"\n"), 0o644)
}

func writePreview(c *svgvector.Conversion) error {
	img, err := svgraster.RasterToImage(c.Viewport, c.Records, *previewSize)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := svgraster.WritePNG(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(*preview, buf.Bytes(), 0o644)
}

// run converts the input and writes the results. The preview goes first,
// so a failed run never leaves the XML output behind.
func run(stdin io.Reader, stdout io.Writer) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	data, err := readInput(stdin)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	c, err := svgvector.ConvertBytes(data, opts)
	if err != nil {
		return err
	}
	log.Printf("[DEBUG] %d paths, viewport %.1fx%.1f", len(c.Records), c.Viewport.Width, c.Viewport.Height)
	if *preview != "" {
		if err := writePreview(c); err != nil {
			return errors.Wrap(err, "writing preview")
		}
	}
	if err := writeOutput(stdout, c.Markup); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svg2vector [flags] < input.svg > output.xml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	setupLogging(os.Stderr, *verbose)

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Printf("[ERROR] svg2vector: %v", err)
		os.Exit(1)
	}
}
