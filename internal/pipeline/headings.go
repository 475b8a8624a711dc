package pipeline

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
)

// Header is a header element found in document content.
type Header struct {
	Depth      int    // 1-6
	Attributes string // raw attribute text of the opening tag, leading space included
	Title      string // inner markup, treated as opaque text
	Match      string // complete original substring: open tag, title, close tag
	Start      int    // byte offset of Match in the scanned content
	End        int    // byte offset just past Match
}

// OpenTag returns the opening tag rebuilt from depth and attributes.
func (h Header) OpenTag() string {
	return "<h" + strconv.Itoa(h.Depth) + h.Attributes + ">"
}

// CloseTag returns the closing tag for the header depth.
func (h Header) CloseTag() string {
	return "</h" + strconv.Itoa(h.Depth) + ">"
}

// openTagPattern matches <h1>..<h6> opening tags, optionally followed by attributes.
// Captures: 1=level, 2=attributes (with leading space).
// RE2 has no backreferences, so the matching close tag is located by hand.
var openTagPattern = regexp.MustCompile(`(?i)<h([1-6])( [^>]+)?>`)

// ScanHeaders returns the headers of content in document order.
// Matching is leftmost and non-overlapping. An opening tag without a matching
// close tag of the same level is skipped. Titles hold at least one byte and
// may span lines.
func ScanHeaders(content string) iter.Seq[Header] {
	return func(yield func(Header) bool) {
		pos := 0
		for pos < len(content) {
			loc := openTagPattern.FindStringSubmatchIndex(content[pos:])
			if loc == nil {
				return
			}

			start := pos + loc[0]
			openEnd := pos + loc[1]
			depth := int(content[pos+loc[2]] - '0')

			var attrs string
			if loc[4] >= 0 {
				attrs = content[pos+loc[4] : pos+loc[5]]
			}

			closeTag := "</h" + strconv.Itoa(depth) + ">"
			closeStart := indexFoldASCII(content, closeTag, openEnd+1)
			if closeStart < 0 {
				pos = start + 1
				continue
			}
			end := closeStart + len(closeTag)

			h := Header{
				Depth:      depth,
				Attributes: attrs,
				Title:      content[openEnd:closeStart],
				Match:      content[start:end],
				Start:      start,
				End:        end,
			}
			if !yield(h) {
				return
			}
			pos = end
		}
	}
}

// CollectHeaders returns all headers of content as a slice.
// Returns nil when no header is found.
func CollectHeaders(content string) []Header {
	return slices.Collect(ScanHeaders(content))
}

// indexFoldASCII returns the index of the first ASCII case-insensitive match
// of sub in s at or after from, or -1.
// Byte offsets are preserved, unlike searching a strings.ToLower copy.
func indexFoldASCII(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
