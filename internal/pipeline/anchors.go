package pipeline

import "strings"

// AnchorClass is the class set on every injected anchor.
const AnchorClass = "autoanchors-anchor"

// InjectAnchors wraps the title of every header in an anchor pointing at itself.
// headers must come from scanning content, in document order. Spans between
// headers are copied as is, so the scanned offsets stay valid for the whole pass.
// Returns content unchanged when headers is empty.
func InjectAnchors(content string, headers []Header) string {
	if len(headers) == 0 {
		return content
	}

	var buf strings.Builder
	buf.Grow(len(content) + len(headers)*64)

	last := 0
	for _, h := range headers {
		if h.Start < last || h.End > len(content) || content[h.Start:h.End] != h.Match {
			// Not from this content; leave it alone.
			continue
		}
		buf.WriteString(content[last:h.Start])
		writeAnchoredHeader(&buf, h)
		last = h.End
	}
	buf.WriteString(content[last:])

	return buf.String()
}

// writeAnchoredHeader writes h with its title wrapped in an anchor.
func writeAnchoredHeader(buf *strings.Builder, h Header) {
	slug := Slug(h.Title)

	buf.WriteString(h.OpenTag())
	buf.WriteString(`<a id="`)
	buf.WriteString(slug)
	buf.WriteString(`" href="#`)
	buf.WriteString(slug)
	buf.WriteString(`" class="`)
	buf.WriteString(AnchorClass)
	buf.WriteString(`">`)
	buf.WriteString(h.Title)
	buf.WriteString(`</a>`)
	buf.WriteString(h.CloseTag())
}
