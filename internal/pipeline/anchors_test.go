package pipeline

import (
	"strings"
	"testing"
)

func TestInjectAnchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single header",
			content: "<h1>Intro</h1>",
			want:    `<h1><a id="intro" href="#intro" class="autoanchors-anchor">Intro</a></h1>`,
		},
		{
			name:    "attributes preserved",
			content: `<h2 class="title">Setup</h2>`,
			want:    `<h2 class="title"><a id="setup" href="#setup" class="autoanchors-anchor">Setup</a></h2>`,
		},
		{
			name:    "surrounding content preserved",
			content: "<p>before</p>\n<h3>Mid</h3>\n<p>after</p>",
			want:    "<p>before</p>\n" + `<h3><a id="mid" href="#mid" class="autoanchors-anchor">Mid</a></h3>` + "\n<p>after</p>",
		},
		{
			name:    "uppercase tags are normalized",
			content: "<H2>Loud</H2>",
			want:    `<h2><a id="loud" href="#loud" class="autoanchors-anchor">Loud</a></h2>`,
		},
		{
			name:    "empty slug",
			content: "<h1> </h1>",
			want:    `<h1><a id="" href="#" class="autoanchors-anchor"> </a></h1>`,
		},
		{
			name:    "no headers returns content unchanged",
			content: "<p>nothing here</p>",
			want:    "<p>nothing here</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectAnchors(tt.content, CollectHeaders(tt.content))
			if got != tt.want {
				t.Errorf("InjectAnchors(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

// Duplicate headers and headers whose text appears earlier in the document
// must each be replaced where they were found.
func TestInjectAnchors_RepeatedHeaders(t *testing.T) {
	t.Parallel()

	content := "<h2>Notes</h2><p>x</p><h2>Notes</h2><p>y</p><h2>Notes</h2>"
	got := InjectAnchors(content, CollectHeaders(content))

	anchored := `<h2><a id="notes" href="#notes" class="autoanchors-anchor">Notes</a></h2>`
	want := anchored + "<p>x</p>" + anchored + "<p>y</p>" + anchored
	if got != want {
		t.Errorf("InjectAnchors() = %q, want %q", got, want)
	}
}

// A title that is a substring of an earlier title must not be misplaced.
func TestInjectAnchors_ForwardPass(t *testing.T) {
	t.Parallel()

	content := "<h1>Go</h1><h2>Go</h2><h1>Go</h1>"
	got := InjectAnchors(content, CollectHeaders(content))

	if strings.Count(got, `class="autoanchors-anchor"`) != 3 {
		t.Fatalf("expected 3 anchors, got %q", got)
	}
	if !strings.HasPrefix(got, `<h1><a id="go"`) {
		t.Errorf("first header not anchored in place: %q", got)
	}
	if !strings.Contains(got, `</h1><h2><a id="go"`) {
		t.Errorf("second header not anchored in place: %q", got)
	}
	if !strings.HasSuffix(got, `Go</a></h1>`) {
		t.Errorf("third header not anchored in place: %q", got)
	}
}

func TestInjectAnchors_ForeignHeadersIgnored(t *testing.T) {
	t.Parallel()

	headers := CollectHeaders("<h1>Other</h1>")
	content := "<p>unrelated</p>"

	if got := InjectAnchors(content, headers); got != content {
		t.Errorf("InjectAnchors() = %q, want %q", got, content)
	}
}

func TestInjectAnchors_TitleRecoverable(t *testing.T) {
	t.Parallel()

	content := "<h1>Café &amp; <em>Co.</em></h1><h2>Next\nline</h2>"
	headers := CollectHeaders(content)
	got := InjectAnchors(content, headers)

	for _, h := range headers {
		wrapped := `class="autoanchors-anchor">` + h.Title + `</a>`
		if !strings.Contains(got, wrapped) {
			t.Errorf("title %q not found verbatim in %q", h.Title, got)
		}
	}
}
