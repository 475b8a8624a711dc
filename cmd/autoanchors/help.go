package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autoanchors [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add header anchors and a table of contents to HTML and Markdown files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .html, .htm, .md or .markdown file, or a directory")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --pdf                 Render PDF instead of HTML")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Anchors:")
	fmt.Fprintln(w, "      --label <s>           Table of contents heading")
	fmt.Fprintln(w, "      --no-advert           Omit the advert placeholder")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w, "      --no-anchors          Leave headers untouched")
	fmt.Fprintln(w, "      --list-view           Render as a listing page (content unchanged)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --inline-css          Inline the stylesheet into HTML output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output and timings")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  AUTOANCHORS_CONFIG, AUTOANCHORS_INPUT_DIR, AUTOANCHORS_OUTPUT_DIR,")
	fmt.Fprintln(w, "  AUTOANCHORS_LABEL, AUTOANCHORS_STYLE, AUTOANCHORS_TIMEOUT, AUTOANCHORS_WORKERS")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN       Chrome binary for --pdf")
}
