package autoanchors

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-autoanchors/internal/fileutil"
)

// pdfConverter prints an anchored HTML page to PDF.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// pdfRenderer prints a local HTML file. Tests swap it for a fake.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// A4 in inches, the unit Chrome's print API expects.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.6
)

// pagesPerBrowser bounds how many pages one Chrome instance prints before it
// is replaced; Chrome's memory baseline grows with every page.
const pagesPerBrowser = 75

// rodRenderer prints files with a headless Chrome driven by go-rod.
// The browser starts on first use. Not safe for concurrent use: each pooled
// Converter owns one.
type rodRenderer struct {
	timeout  time.Duration
	launcher *launcher.Launcher
	browser  *rod.Browser
	printed  int
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// newLauncher configures Chrome for unattended printing.
// ROD_BROWSER_BIN selects a preinstalled binary, otherwise rod finds or
// downloads one. Containers and CI run without the sandbox.
func newLauncher() *launcher.Launcher {
	l := launcher.New().
		Headless(true).
		Leakless(true).
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling")

	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	if bin != "" || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}
	return l
}

// connect starts a browser unless a usable one is running.
func (r *rodRenderer) connect() error {
	if r.browser != nil && r.printed < pagesPerBrowser {
		return nil
	}
	if r.browser != nil {
		if err := r.shutdown(); err != nil {
			return fmt.Errorf("%w: recycling: %v", ErrBrowserConnect, err)
		}
	}

	l := newLauncher()
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher, r.browser, r.printed = l, browser, 0
	return nil
}

// shutdown closes the browser and kills its process tree.
func (r *rodRenderer) shutdown() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// Close releases the browser. Safe to call when none was started.
func (r *rodRenderer) Close() error {
	return r.shutdown()
}

// RenderFromFile loads filePath in a fresh tab and prints it.
// TOC links keep working inside the PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := loadTimeout(ctx, r.timeout)
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	if err := r.connect(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()
	r.printed++

	page = page.Context(ctx)
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// loadTimeout is the time left before the ctx deadline, or fallback without one.
func loadTimeout(ctx context.Context, fallback time.Duration) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		return time.Until(deadline)
	}
	return fallback
}

// printOptions prints A4 with uniform margins and backgrounds, no header or footer.
func printOptions() *proto.PagePrintToPDF {
	margin := marginInches
	width, height := paperWidthInches, paperHeightInches
	return &proto.PagePrintToPDF{
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
		PrintBackground: true,
	}
}

// rodConverter hands HTML to its renderer through a temp file, so the page
// gets a file:// origin and can load the local images resolved for it.
type rodConverter struct {
	renderer pdfRenderer
}

func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{renderer: newRodRenderer(timeout)}
}

// ToPDF renders htmlContent. The temp file is removed afterwards.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	path, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, path)
}

// Close releases the renderer.
func (c *rodConverter) Close() error {
	if c.renderer == nil {
		return nil
	}
	return c.renderer.Close()
}
