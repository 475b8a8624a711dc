package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds verbosity and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	label    string
	noAdvert bool
	disabled bool
}

// assetFlags holds stylesheet flags.
type assetFlags struct {
	style     string // Style name
	assetPath string // Directory with styles/{name}.css overrides
	inlineCSS bool   // Inline the stylesheet into outputs
}

// convertFlags holds all command-line flags.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	toc       tocFlags
	noAnchors bool
	listView  bool
	assets    assetFlags
	pdf       bool
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output and timings")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.label, "label", "", "table of contents heading (default \"Contents\")")
	fs.BoolVar(&f.noAdvert, "no-advert", false, "omit the advert placeholder")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// addAssetFlags adds stylesheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.inlineCSS, "inline-css", false, "inline the stylesheet into HTML output")
}

// parseConvertFlags parses flags and returns positional args.
// Usage goes to w on --help or a parse error.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("autoanchors", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noAnchors, "no-anchors", false, "leave headers untouched")
	fs.BoolVar(&f.listView, "list-view", false, "render as a listing page (content unchanged)")
	fs.BoolVar(&f.pdf, "pdf", false, "render PDF instead of HTML")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addTOCFlags(fs, &f.toc)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
