package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"svgxform/pkg/cfg"
	"svgxform/pkg/document"
	"svgxform/pkg/svgpath"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if xerrors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "svgxform: %s\n", err)
		os.Exit(1)
	}
}

type options struct {
	output    string
	config    string
	verbose   bool
	near      string
	count     int
	transform string
	path      string
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("svgxform", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: svgxform [flags] svg-file\n")
		fmt.Fprintf(stderr, "       svgxform -t transform [-d path-data]\n")
		flags.PrintDefaults()
	}

	var opts options
	flags.StringVarP(&opts.output, "output", "o", "", "write the flattened document here instead of stdout")
	flags.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every converted element")
	flags.StringVar(&opts.near, "near", "", "list the elements closest to x,y after flattening")
	flags.IntVarP(&opts.count, "count", "n", 1, "number of elements listed by --near")
	flags.StringVarP(&opts.transform, "transform", "t", "", "transform expression to apply to --path")
	flags.StringVarP(&opts.path, "path", "d", "", "path data to transform")
	if err := flags.Parse(args); err != nil {
		return err
	}

	config := cfg.Default()
	if opts.config != "" {
		var err error
		if config, err = cfg.Load(opts.config); err != nil {
			return err
		}
	}
	level, err := config.Level()
	if err != nil {
		return err
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if flags.Changed("transform") || flags.Changed("path") {
		return oneShot(opts, logger, stdout)
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return xerrors.New("expected exactly one svg file")
	}
	return flattenFile(flags.Arg(0), opts, config, logger, stdout, stderr)
}

// oneShot transforms a single path, or prints the matrix of the expression
// when no path is given.
func oneShot(opts options, logger *slog.Logger, stdout io.Writer) error {
	converter := svgpath.NewConverter(logger)
	m := converter.ParseTransform(opts.transform)
	if opts.path == "" {
		_, err := fmt.Fprintf(stdout, "matrix(%s %s %s %s %s %s)\n",
			svgpath.FormatNumber(m.A), svgpath.FormatNumber(m.B),
			svgpath.FormatNumber(m.C), svgpath.FormatNumber(m.D),
			svgpath.FormatNumber(m.E), svgpath.FormatNumber(m.F))
		return err
	}
	_, err := fmt.Fprintln(stdout, converter.TransformPathData(opts.path, m))
	return err
}

func flattenFile(filename string, opts options, config cfg.Config, logger *slog.Logger, stdout, stderr io.Writer) error {
	var x, y float64
	if opts.near != "" {
		var err error
		if x, y, err = parsePoint(opts.near); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return xerrors.Errorf("file read error: %w", err)
	}

	root, err := document.Parse(data)
	if err != nil {
		return xerrors.Errorf("parse error: %w", err)
	}

	flattener := document.NewFlattener(config, logger)
	report := flattener.Flatten(root)
	logger.Info("flattened",
		"file", filename,
		"converted", report.Converted,
		"skipped", report.Skipped,
		"retained", report.Retained)

	out, err := root.Marshal()
	if err != nil {
		return xerrors.Errorf("marshal error: %w", err)
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, append(out, '\n'), 0o644); err != nil {
			return xerrors.Errorf("file write error: %w", err)
		}
	} else if _, err := fmt.Fprintln(stdout, string(out)); err != nil {
		return err
	}

	if opts.near != "" {
		for _, node := range flattener.Index().Nearest(x, y, opts.count) {
			id := node.Attr("id")
			if id == "" {
				id = "-"
			}
			fmt.Fprintf(stderr, "%s\t%s\n", node.Name(), id)
		}
	}
	return nil
}

// parsePoint reads an "x,y" pair.
func parsePoint(v string) (float64, float64, error) {
	parts := strings.Split(v, ",")
	if len(parts) == 2 {
		x, okX := svgpath.ParseNumber(parts[0])
		y, okY := svgpath.ParseNumber(parts[1])
		if okX && okY {
			return x, y, nil
		}
	}
	return 0, 0, xerrors.Errorf("--near %q: want x,y", v)
}
