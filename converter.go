package autoanchors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-autoanchors/internal/assets"
	"github.com/alnah/go-autoanchors/internal/pipeline"
)

// Input formats accepted by Converter.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// defaultTimeout bounds PDF page loading when the context has no deadline.
const defaultTimeout = 30 * time.Second

// Input holds one document to convert.
type Input struct {
	Content   string // HTML fragment, HTML document or Markdown
	Format    string // FormatHTML (default) or FormatMarkdown
	SourceDir string // Resolves relative images and links when rendering PDF
	ListView  bool   // Render as a listing page: content passes through untouched
	InlineCSS bool   // Inline the stylesheet into the HTML output
	PDF       bool   // Also render a PDF
}

// Result holds the outputs of a conversion.
type Result struct {
	HTML    []byte
	PDF     []byte // nil unless Input.PDF
	Headers int    // Number of headers anchored
}

// Converter runs a document through Markdown rendering, anchoring, stylesheet
// inlining and optional PDF rendering.
// Create with NewConverter and Close when done to release the browser.
type Converter struct {
	cfg          converterConfig
	transformer  *Transformer
	markdown     pipeline.MarkdownRenderer
	styleLoader  assets.StyleLoader
	css          string
	pdfConverter pdfConverter
}

// converterConfig holds settings applied by ConverterOption.
type converterConfig struct {
	timeout   time.Duration
	assetPath string
	style     string
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithTimeout sets the PDF page load timeout used when the context has no deadline.
func WithTimeout(d time.Duration) ConverterOption {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithTransformer sets the Transformer used for anchoring.
func WithTransformer(t *Transformer) ConverterOption {
	return func(c *Converter) {
		if t != nil {
			c.transformer = t
		}
	}
}

// WithAssetPath sets a directory whose styles/{name}.css override the built-in styles.
func WithAssetPath(path string) ConverterOption {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyle selects the stylesheet by name, without the .css extension.
func WithStyle(name string) ConverterOption {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// NewConverter creates a Converter with the default Transformer and the
// built-in stylesheet. The browser is started on the first PDF conversion.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout, style: assets.DefaultStyleName},
		transformer: defaultTransformer,
		markdown:    pipeline.NewGoldmarkRenderer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.styleLoader = resolver

	css, err := c.styleLoader.LoadStyle(c.cfg.style)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, c.cfg.style)
		}
		return nil, fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}
	c.css = css

	c.pdfConverter = newRodConverter(c.cfg.timeout)

	return c, nil
}

// Convert anchors input and returns the HTML and, if requested, the PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := input.Content
	if input.Format == FormatMarkdown {
		content, err = c.markdown.Render(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
		}
	}

	rc := RenderContext{SingleView: !input.ListView}
	res := &Result{}
	if rc.SingleView {
		res.Headers = len(pipeline.CollectHeaders(content))
	}
	content = c.transformer.ApplyDocument(content, rc)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if input.InlineCSS {
		res.HTML = []byte(pipeline.InlineStylesheet(content, c.css))
	} else {
		res.HTML = []byte(content)
	}

	if !input.PDF {
		return res, nil
	}

	printable := content
	if input.SourceDir != "" {
		printable, err = pipeline.ResolveLocalRefs(printable, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("resolving local references: %w", err)
		}
	}
	// Printed output is always styled.
	printable = pipeline.InlineStylesheet(printable, c.css)

	res.PDF, err = c.pdfConverter.ToPDF(ctx, printable)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func validateInput(input Input) error {
	if input.Content == "" {
		return ErrEmptyContent
	}
	switch input.Format {
	case "", FormatHTML, FormatMarkdown:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidFormat, input.Format)
}
