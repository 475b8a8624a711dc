package pipeline

// Options controls a transformation pass.
type Options struct {
	TOC       TOCOptions
	NoTOC     bool // Skip the table of contents
	NoAnchors bool // Leave headers untouched
}

// Transform injects anchors into the headers of content and prepends the TOC.
// Content without headers is returned unchanged.
func Transform(content string, opts Options) string {
	headers := CollectHeaders(content)
	if len(headers) == 0 {
		return content
	}

	out := content
	if !opts.NoAnchors {
		out = InjectAnchors(content, headers)
	}
	if opts.NoTOC {
		return out
	}
	return BuildTOC(headers, opts.TOC) + out
}
