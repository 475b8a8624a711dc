package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveLocalRefs rewrites relative img[src] and a[href] values to absolute
// file:// URLs under baseDir. PDF rendering loads the document from a temp
// file, so relative references would otherwise break.
// Fragment links (#slug), URLs and absolute paths are left alone, as are
// paths escaping baseDir. Returns content unchanged when baseDir is empty.
func ResolveLocalRefs(content, baseDir string) (string, error) {
	if baseDir == "" {
		return content, nil
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if IsDocument(content) {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return "", err
		}
		resolveNode(doc, absDir)
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		resolveNode(n, absDir)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func resolveNode(n *html.Node, dir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			resolveAttr(n, "src", dir)
		case atom.A:
			resolveAttr(n, "href", dir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, dir)
	}
}

func resolveAttr(n *html.Node, key, dir string) {
	for i, a := range n.Attr {
		if a.Key != key || !isLocalRef(a.Val) {
			continue
		}
		abs := filepath.Join(dir, a.Val)
		if !isWithin(abs, dir) {
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
}

// isLocalRef reports whether ref is a relative file path.
func isLocalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref)
}

func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
