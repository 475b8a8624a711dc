package pipeline

import "strings"

// InlineStylesheet inserts css as a <style> block with InsertHead.
func InlineStylesheet(content, css string) string {
	if css == "" {
		return content
	}
	return InsertHead(content, "<style>"+sanitizeCSS(css)+"</style>")
}

// InsertHead inserts markup before </head>, then at the start of the body,
// then prepends it.
func InsertHead(content, markup string) string {
	if markup == "" {
		return content
	}
	if idx := indexFoldASCII(content, "</head>", 0); idx >= 0 {
		return content[:idx] + markup + content[idx:]
	}
	if start, _, ok := bodySpan(content); ok {
		return content[:start] + markup + content[start:]
	}
	return markup + content
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
