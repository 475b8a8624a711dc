package pipeline

import (
	"html"
	"strings"
)

// Fixed class names of the TOC markup. Stylesheets depend on them.
const (
	TOCClass       = "autoanchors-toc"
	ContainerClass = "autoanchors-container"
	TOCHeaderClass = "autoanchors-toc-header"
	AdvertClass    = "autoanchors-advert"
)

// DefaultTOCLabel is the text shown above the TOC list.
const DefaultTOCLabel = "Contents"

// TOCOptions holds TOC rendering options.
type TOCOptions struct {
	Label    string // Header label (empty = DefaultTOCLabel)
	NoAdvert bool   // Omit the advert placeholder
}

// tocList tracks the open <ol> levels while building the TOC.
type tocList struct {
	buf   *strings.Builder
	depth int
}

// moveTo opens or closes one list level per unit of depth difference.
// A jump from depth 1 to 4 opens three lists with no item at the skipped depths.
func (l *tocList) moveTo(depth int) {
	for l.depth < depth {
		l.buf.WriteString("<ol>")
		l.depth++
	}
	for l.depth > depth {
		l.buf.WriteString("</ol>")
		l.depth--
	}
}

func (l *tocList) item(h Header) {
	l.buf.WriteString(`<li><a href="#`)
	l.buf.WriteString(Slug(h.Title))
	l.buf.WriteString(`">`)
	l.buf.WriteString(h.Title)
	l.buf.WriteString(`</a></li>`)
}

// BuildTOC returns the table of contents for headers as an HTML fragment.
// Titles are written verbatim since they are markup taken from the document.
// Returns "" when headers is empty.
func BuildTOC(headers []Header, opts TOCOptions) string {
	if len(headers) == 0 {
		return ""
	}

	label := opts.Label
	if label == "" {
		label = DefaultTOCLabel
	}

	var buf strings.Builder
	buf.WriteString(`<div class="` + TOCClass + `">`)
	buf.WriteString(`<div class="` + ContainerClass + `">`)
	buf.WriteString(`<div class="` + TOCHeaderClass + `">`)
	buf.WriteString(html.EscapeString(label))
	buf.WriteString(`</div>`)

	list := &tocList{buf: &buf}
	for _, h := range headers {
		list.moveTo(h.Depth)
		list.item(h)
	}
	list.moveTo(0)

	buf.WriteString(`</div>`)
	if !opts.NoAdvert {
		buf.WriteString(advert())
	}
	buf.WriteString(`</div>`)

	return buf.String()
}

// advert returns the placeholder block shown under the TOC.
func advert() string {
	return `<div class="` + AdvertClass + `">&nbsp;</div>`
}
