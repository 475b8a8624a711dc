package main

import (
	"html"
	"strings"
)

// headLinks collects stylesheet registrations as <link> tags.
type headLinks struct {
	buf strings.Builder
}

// EnqueueStyle implements autoanchors.StyleRegistrar.
func (l *headLinks) EnqueueStyle(handle, href string) {
	l.buf.WriteString(`<link rel="stylesheet" id="`)
	l.buf.WriteString(html.EscapeString(handle))
	l.buf.WriteString(`" href="`)
	l.buf.WriteString(html.EscapeString(href))
	l.buf.WriteString(`">`)
}

// String returns the collected tags.
func (l *headLinks) String() string {
	return l.buf.String()
}
