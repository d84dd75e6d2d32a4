// Package app implements the plottrace command: load a CRDT
// benchmark CSV, plot it, and show or save the figure.
package app

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/uluyol/plottrace/plotting"
	"github.com/uluyol/plottrace/readers"
)

const usageLine = "Usage: plottrace <csv_file>"

// ErrUsage is returned by ParseArgs when no csv file was given.
// The usage line has already been printed.
var ErrUsage = errors.New("missing csv file argument")

// A Displayer shows a rendered figure and returns once it is dismissed.
type Displayer interface {
	Display(img image.Image, title string) error
}

type Options struct {
	Path       string
	OutPath    string
	ConfigPath string
	Log        *log.Logger

	profileFlags
}

// ParseArgs parses the command line, excluding the program name.
// Only the first positional argument is used.
func ParseArgs(args []string, stdout, stderr io.Writer) (*Options, error) {
	var (
		opts    Options
		verbose bool
		formats bool
	)

	fs := flag.NewFlagSet("plottrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.OutPath, "o", "", "save the plot to this file instead of opening a window (format from extension)")
	fs.StringVar(&opts.ConfigPath, "config", "", "JSON style file (see -formats)")
	fs.BoolVar(&verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&formats, "formats", false, "describe the csv and config formats and exit")
	opts.profileFlags.setFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if formats {
		fmt.Fprint(stderr, formatsDoc)
		return nil, flag.ErrHelp
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, usageLine)
		return nil, ErrUsage
	}
	opts.Path = fs.Arg(0)

	if verbose {
		opts.Log = log.New(stderr, "plottrace: ", log.LstdFlags)
	} else {
		opts.Log = log.New(io.Discard, "", 0)
	}
	return &opts, nil
}

// Run plots the file named by opts. It writes opts.OutPath if set
// and otherwise hands the rendered image to d.
func Run(opts *Options, d Displayer) error {
	defer opts.setupProfiling().Stop()

	lg := opts.Log
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}

	st, err := loadStyle(opts.ConfigPath)
	if err != nil {
		return err
	}

	series, err := readers.ReadChangesFile(opts.Path)
	if err != nil {
		return err
	}
	lg.Printf("loaded %d points from %s", series.Len(), opts.Path)

	p, err := plotting.NewTracePlot(series, st)
	if err != nil {
		return err
	}

	if opts.OutPath != "" {
		if err := plotting.Save(p, st, opts.OutPath); err != nil {
			return err
		}
		lg.Printf("wrote %s", opts.OutPath)
		return nil
	}

	img, err := plotting.Render(p, st)
	if err != nil {
		return err
	}
	lg.Printf("displaying %dx%d plot", img.Bounds().Dx(), img.Bounds().Dy())
	return errors.Wrap(d.Display(img, st.Title), "unable to display plot")
}
