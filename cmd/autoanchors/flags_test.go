package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, args, err := parseConvertFlags([]string{"docs"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConvertFlags() unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != "docs" {
		t.Errorf("args = %v, want [docs]", args)
	}
	if f.workers != 0 || f.pdf || f.listView || f.noAnchors || f.toc.disabled || f.toc.noAdvert {
		t.Errorf("unexpected non-default flags: %+v", f)
	}
}

func TestParseConvertFlags_All(t *testing.T) {
	t.Parallel()

	f, args, err := parseConvertFlags([]string{
		"-c", "site", "-o", "out", "-w", "3", "-t", "45s", "-q", "-v",
		"--label", "Sommaire", "--no-advert", "--no-toc", "--no-anchors", "--list-view",
		"--style", "dark", "--asset-path", "assets", "--inline-css", "--pdf", "--version",
		"in.html",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConvertFlags() unexpected error: %v", err)
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"config", f.common.config == "site"},
		{"output", f.output == "out"},
		{"workers", f.workers == 3},
		{"timeout", f.timeout == "45s"},
		{"quiet", f.common.quiet},
		{"verbose", f.common.verbose},
		{"label", f.toc.label == "Sommaire"},
		{"no-advert", f.toc.noAdvert},
		{"no-toc", f.toc.disabled},
		{"no-anchors", f.noAnchors},
		{"list-view", f.listView},
		{"style", f.assets.style == "dark"},
		{"asset-path", f.assets.assetPath == "assets"},
		{"inline-css", f.assets.inlineCSS},
		{"pdf", f.pdf},
		{"version", f.version},
		{"positional", len(args) == 1 && args[0] == "in.html"},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("flag %s not parsed: %+v", c.name, f)
		}
	}
}

func TestParseConvertFlags_Help(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, _, err := parseConvertFlags([]string{"--help"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseConvertFlags(--help) error = %v, want ErrHelp", err)
	}
	if !strings.Contains(buf.String(), "Usage: autoanchors") {
		t.Errorf("usage not printed: %q", buf.String())
	}
}

func TestParseConvertFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConvertFlags([]string{"--colour"}, &bytes.Buffer{}); err == nil {
		t.Error("parseConvertFlags(--colour) expected error")
	}
}
