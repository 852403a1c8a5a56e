package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/afero"

	"github.com/ericlevine/brailleart"
	"github.com/ericlevine/brailleart/charset"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// config holds the parsed command line.
type config struct {
	input    string
	output   string
	encoding string
	verbose  bool
	render   brailleart.RenderOptions
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{render: *brailleart.DefaultRenderOptions()}

	fset := flag.NewFlagSet("brailleart", flag.ContinueOnError)
	fset.SetOutput(stderr)
	for _, name := range []string{"w", "width"} {
		fset.IntVar(&cfg.render.Width, name, cfg.render.Width, "output width in characters (-1 keeps the original size)")
	}
	for _, name := range []string{"t", "threshold"} {
		fset.IntVar(&cfg.render.Threshold, name, cfg.render.Threshold, "luminance threshold for the binary image")
	}
	for _, name := range []string{"s", "swap"} {
		fset.BoolVar(&cfg.render.Swap, name, false, "swap braille characters (raise dots for dark pixels)")
	}
	for _, name := range []string{"o", "output"} {
		fset.StringVar(&cfg.output, name, "", "write the result to this file instead of stdout")
	}
	fset.BoolVar(&cfg.render.AutoThreshold, "auto-threshold", false, "estimate the threshold from the image histogram")
	fset.StringVar(&cfg.encoding, "encoding", charset.Default, "output encoding: "+strings.Join(charset.Names(), ", "))
	fset.IntVar(&cfg.render.Workers, "j", 0, "rows rendered concurrently (0 uses every CPU)")
	fset.BoolVar(&cfg.verbose, "v", false, "print the pipeline parameters to stderr")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: brailleart [flags] <image-file>\n\n")
		fmt.Fprintf(stderr, "Render an image (PNG, JPEG, GIF, BMP, TIFF, WebP) as braille text art.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fset.PrintDefaults()
	}

	// Flags may follow the image path, as in "brailleart cat.png -w 80".
	var positional []string
	for {
		if err := fset.Parse(args); err != nil {
			return nil, err
		}
		if fset.NArg() == 0 {
			break
		}
		positional = append(positional, fset.Arg(0))
		args = fset.Args()[1:]
	}

	if len(positional) != 1 {
		fset.Usage()
		return nil, errUsage
	}
	cfg.input = positional[0]
	return cfg, nil
}

var errUsage = errors.New("usage")

func run(ctx context.Context, fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	enc, err := charset.Lookup(cfg.encoding)
	if err != nil {
		fmt.Fprintf(stderr, "brailleart: %v: %q\n", err, cfg.encoding)
		return 2
	}

	src, err := loadImage(fs, cfg.input)
	if err != nil {
		if errors.Is(err, brailleart.ErrInputNotFound) {
			fmt.Fprintf(stderr, "File not found: %s\n", cfg.input)
		} else {
			fmt.Fprintf(stderr, "%s: error: %v\n", cfg.input, err)
		}
		return 1
	}

	res, err := brailleart.Rasterize(ctx, src, &cfg.render)
	if errors.Is(err, brailleart.ErrWidth) {
		fmt.Fprintf(stderr, "brailleart: %v\n", err)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", cfg.input, err)
		return 1
	}
	if cfg.verbose {
		fmt.Fprintf(stderr, "%s: %dx%d => %dx%d, %dx%d glyphs, threshold %d, %s\n",
			cfg.input, src.Width(), src.Height(), res.Width, res.Height,
			res.Columns, res.Rows, res.Threshold, res.Polarity)
	}

	if cfg.output != "" {
		data, err := charset.EncodeString(res.Text, enc)
		if err != nil {
			fmt.Fprintf(stderr, "brailleart: encode output: %v\n", err)
			return 1
		}
		if err := afero.WriteFile(fs, cfg.output, data, 0o644); err != nil {
			fmt.Fprintf(stderr, "%s: error: %v\n", cfg.output, err)
			return 1
		}
		return 0
	}
	w := charset.NewWriter(stdout, enc)
	if _, err := io.WriteString(w, res.Text); err != nil {
		fmt.Fprintf(stderr, "brailleart: %v\n", err)
		return 1
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(stderr, "brailleart: %v\n", err)
		return 1
	}
	return 0
}

func loadImage(fs afero.Fs, path string) (brailleart.LuminanceSource, error) {
	if _, err := fs.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", brailleart.ErrInputNotFound, path)
		}
		return nil, err
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return brailleart.Decode(f)
}
