package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodySpan returns the byte range of the <body> element contents.
// ok is false when content has no <body> start tag, i.e. it is a fragment.
// The tokenizer skips tags inside comments, scripts and styles.
func bodySpan(content string) (start, end int, ok bool) {
	z := html.NewTokenizer(strings.NewReader(content))
	start, end = -1, -1

	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tokStart := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if start < 0 && atom.Lookup(name) == atom.Body {
				start = offset
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if start >= 0 && atom.Lookup(name) == atom.Body {
				end = tokStart
			}
		}
	}

	if start < 0 {
		return 0, 0, false
	}
	if end < start {
		end = len(content)
	}
	return start, end, true
}

// TransformDocument applies Transform to a full HTML document or a fragment.
// For documents, only the body contents are transformed, so the TOC is placed
// right after the <body> tag.
func TransformDocument(content string, opts Options) string {
	start, end, ok := bodySpan(content)
	if !ok {
		return Transform(content, opts)
	}

	body := content[start:end]
	transformed := Transform(body, opts)
	if transformed == body {
		return content
	}
	return content[:start] + transformed + content[end:]
}

// IsDocument reports whether content is a full HTML document rather than a fragment.
func IsDocument(content string) bool {
	_, _, ok := bodySpan(content)
	return ok
}
