package pipeline

import (
	"testing"
)

func TestCollectHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []Header
	}{
		{
			name:    "no headers",
			content: "<p>Just a paragraph</p>",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "single header",
			content: "<h1>Intro</h1>",
			want: []Header{
				{Depth: 1, Title: "Intro", Match: "<h1>Intro</h1>", Start: 0, End: 14},
			},
		},
		{
			name:    "header with attributes",
			content: `<p>x</p><h2 class="big" id="a">Setup</h2>`,
			want: []Header{
				{
					Depth:      2,
					Attributes: ` class="big" id="a"`,
					Title:      "Setup",
					Match:      `<h2 class="big" id="a">Setup</h2>`,
					Start:      8,
					End:        41,
				},
			},
		},
		{
			name:    "case insensitive tags",
			content: "<H3>Loud</H3>",
			want: []Header{
				{Depth: 3, Title: "Loud", Match: "<H3>Loud</H3>", Start: 0, End: 13},
			},
		},
		{
			name:    "mixed case close tag",
			content: "<h4>Mixed</H4>",
			want: []Header{
				{Depth: 4, Title: "Mixed", Match: "<h4>Mixed</H4>", Start: 0, End: 14},
			},
		},
		{
			name:    "title spans lines",
			content: "<h2>Line one\nline two</h2>",
			want: []Header{
				{Depth: 2, Title: "Line one\nline two", Match: "<h2>Line one\nline two</h2>", Start: 0, End: 26},
			},
		},
		{
			name:    "title keeps inline markup",
			content: "<h1><em>Bold</em> move</h1>",
			want: []Header{
				{Depth: 1, Title: "<em>Bold</em> move", Match: "<h1><em>Bold</em> move</h1>", Start: 0, End: 27},
			},
		},
		{
			name:    "non-greedy title",
			content: "<h1>A</h1><h1>B</h1>",
			want: []Header{
				{Depth: 1, Title: "A", Match: "<h1>A</h1>", Start: 0, End: 10},
				{Depth: 1, Title: "B", Match: "<h1>B</h1>", Start: 10, End: 20},
			},
		},
		{
			name:    "close tag must match level",
			content: "<h1>A</h2> tail</h1>",
			want: []Header{
				{Depth: 1, Title: "A</h2> tail", Match: "<h1>A</h2> tail</h1>", Start: 0, End: 20},
			},
		},
		{
			name:    "unclosed header is skipped",
			content: "<h2>Orphan<h3>Real</h3>",
			want: []Header{
				{Depth: 3, Title: "Real", Match: "<h3>Real</h3>", Start: 10, End: 23},
			},
		},
		{
			name:    "empty title does not match",
			content: "<h1></h1>",
			want:    nil,
		},
		{
			name:    "h7 is not a header",
			content: "<h7>Nope</h7>",
			want:    nil,
		},
		{
			name:    "attributes need a leading space",
			content: "<h1x>Nope</h1>",
			want:    nil,
		},
		{
			name:    "header tag lookalikes are ignored",
			content: "<header>Site</header><hr>",
			want:    nil,
		},
		{
			name:    "nested same-level header closes at first close tag",
			content: "<h2>Outer <h2>Inner</h2> rest</h2>",
			want: []Header{
				{Depth: 2, Title: "Outer <h2>Inner", Match: "<h2>Outer <h2>Inner</h2>", Start: 0, End: 24},
			},
		},
		{
			name:    "offsets survive multibyte text",
			content: "<p>Ünïcödé</p><h1>Çafé</h1>",
			want: []Header{
				{Depth: 1, Title: "Çafé", Match: "<h1>Çafé</h1>", Start: 18, End: 33},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CollectHeaders(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("CollectHeaders(%q) returned %d headers, want %d: %+v", tt.content, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("header[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
				if tt.content[got[i].Start:got[i].End] != got[i].Match {
					t.Errorf("header[%d] offsets [%d:%d] do not cover %q", i, got[i].Start, got[i].End, got[i].Match)
				}
			}
		})
	}
}

func TestScanHeaders_StopsEarly(t *testing.T) {
	t.Parallel()

	content := "<h1>A</h1><h2>B</h2><h3>C</h3>"
	var titles []string
	for h := range ScanHeaders(content) {
		titles = append(titles, h.Title)
		if len(titles) == 2 {
			break
		}
	}

	if len(titles) != 2 || titles[0] != "A" || titles[1] != "B" {
		t.Errorf("titles = %v, want [A B]", titles)
	}
}

func TestHeader_Tags(t *testing.T) {
	t.Parallel()

	h := Header{Depth: 5, Attributes: ` class="x"`}
	if got := h.OpenTag(); got != `<h5 class="x">` {
		t.Errorf("OpenTag() = %q, want %q", got, `<h5 class="x">`)
	}
	if got := h.CloseTag(); got != "</h5>" {
		t.Errorf("CloseTag() = %q, want %q", got, "</h5>")
	}
}

func TestIndexFoldASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		sub  string
		from int
		want int
	}{
		{"abc</H1>", "</h1>", 0, 3},
		{"</h1>abc</h1>", "</h1>", 1, 8},
		{"abc", "</h1>", 0, -1},
		{"", "</h1>", 0, -1},
		{"</h1>", "</h1>", -3, 0},
	}

	for _, tt := range tests {
		if got := indexFoldASCII(tt.s, tt.sub, tt.from); got != tt.want {
			t.Errorf("indexFoldASCII(%q, %q, %d) = %d, want %d", tt.s, tt.sub, tt.from, got, tt.want)
		}
	}
}
