package autoanchors

import "github.com/alnah/go-autoanchors/internal/pipeline"

// Markup classes emitted by the transformation.
const (
	ClassTOC       = pipeline.TOCClass
	ClassContainer = pipeline.ContainerClass
	ClassTOCHeader = pipeline.TOCHeaderClass
	ClassAnchor    = pipeline.AnchorClass
	ClassAdvert    = pipeline.AdvertClass
)

// DefaultLabel is the TOC heading used when no label is configured.
const DefaultLabel = pipeline.DefaultTOCLabel

// RenderContext describes the page being rendered.
// Only single-item views are transformed; listings pass through untouched.
type RenderContext struct {
	SingleView bool
}

// Transformer injects header anchors and a table of contents into HTML content.
// A Transformer is immutable after New and safe for concurrent use.
type Transformer struct {
	opts pipeline.Options
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLabel sets the TOC heading text. An empty label keeps DefaultLabel.
// The label is HTML-escaped.
func WithLabel(label string) Option {
	return func(t *Transformer) {
		t.opts.TOC.Label = label
	}
}

// WithAdvert toggles the advert placeholder rendered after the TOC list.
func WithAdvert(enabled bool) Option {
	return func(t *Transformer) {
		t.opts.TOC.NoAdvert = !enabled
	}
}

// WithoutTOC disables the table of contents. Anchors are still injected.
func WithoutTOC() Option {
	return func(t *Transformer) {
		t.opts.NoTOC = true
	}
}

// WithoutAnchors leaves headers untouched. The TOC still links to the slugs.
func WithoutAnchors() Option {
	return func(t *Transformer) {
		t.opts.NoAnchors = true
	}
}

// New creates a Transformer. Without options the output is the fixed markup:
// anchors on every header, a "Contents" TOC and the advert placeholder.
func New(opts ...Option) *Transformer {
	t := &Transformer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform rewrites content unconditionally.
// Content without headers is returned unchanged.
func (t *Transformer) Transform(content string) string {
	return pipeline.Transform(content, t.opts)
}

// Apply transforms content when rc is a single view and returns it unchanged
// otherwise.
func (t *Transformer) Apply(content string, rc RenderContext) string {
	if !rc.SingleView {
		return content
	}
	return t.Transform(content)
}

// ApplyDocument is Apply for input that may be a full HTML document.
// Only the body is transformed; the TOC is placed right after <body>.
func (t *Transformer) ApplyDocument(content string, rc RenderContext) string {
	if !rc.SingleView {
		return content
	}
	return pipeline.TransformDocument(content, t.opts)
}

var defaultTransformer = New()

// Apply transforms content with the default options when rc is a single view.
//
//	out := autoanchors.Apply(body, autoanchors.RenderContext{SingleView: true})
func Apply(content string, rc RenderContext) string {
	return defaultTransformer.Apply(content, rc)
}

// Headers returns the depth, title and slug of every header Apply would anchor,
// in document order.
func Headers(content string) []Heading {
	found := pipeline.CollectHeaders(content)
	headings := make([]Heading, len(found))
	for i, h := range found {
		headings[i] = Heading{Depth: h.Depth, Title: h.Title, Slug: pipeline.Slug(h.Title)}
	}
	return headings
}

// Heading describes one discovered header.
type Heading struct {
	Depth int    // 1-6
	Title string // Inner markup, verbatim
	Slug  string // Anchor id
}

// Slug returns the anchor id derived from a header title.
func Slug(title string) string {
	return pipeline.Slug(title)
}
