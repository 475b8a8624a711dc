package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownConversion indicates Markdown rendering failed.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// documentTemplate wraps rendered Markdown in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// MarkdownRenderer abstracts Markdown to HTML rendering.
type MarkdownRenderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// GoldmarkRenderer renders Markdown to an HTML document using goldmark.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM, footnotes and
// class-based syntax highlighting.
// Heading IDs are not generated: the anchors injected later own the ids.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts Markdown to a standalone HTML5 document.
// goldmark has no context support, so rendering runs in a goroutine and the
// call returns early on cancellation.
func (r *GoldmarkRenderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(documentTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
