package pipeline

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonSlugChars matches characters removed before separators are collapsed.
var nonSlugChars = regexp.MustCompile(`[^a-zA-Z0-9/_|+ -]`)

// separatorRun matches runs of characters collapsed into a single hyphen.
var separatorRun = regexp.MustCompile(`[/_|+ -]+`)

// asciiFallbacks covers letters that have no canonical decomposition.
var asciiFallbacks = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
	'ħ': "h", 'Ħ': "H",
	'ŋ': "ng", 'Ŋ': "NG",
	'‘': "'", '’': "'",
	'“': `"`, '”': `"`,
	'–': "-", '—': "-",
	'…': "...",
	'€': "EUR",
}

// Slug derives the anchor name for a header title.
// Both the anchor id and the TOC link go through Slug, so they always agree.
// A title without usable characters yields "".
func Slug(title string) string {
	s := transliterate(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "-")
	s = separatorRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.ToLower(s)
	return url.QueryEscape(s)
}

// transliterate maps s to ASCII. Accents are removed by decomposition,
// a few letters use asciiFallbacks, and everything else is dropped.
func transliterate(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if repl, ok := asciiFallbacks[r]; ok {
			b.WriteString(repl)
		}
	}
	return b.String()
}
