// Package autoanchors adds anchor links to the headers of an HTML page and
// prepends a table of contents linking to them.
//
// # Quick Start
//
// Transform a rendered page body:
//
//	out := autoanchors.Apply(body, autoanchors.RenderContext{SingleView: true})
//
// Every <h1> to <h6> gets its title wrapped in an anchor whose id is the title
// slug, and a nested list of those anchors is placed before the content:
//
//	<div class="autoanchors-toc"><div class="autoanchors-container">
//	<div class="autoanchors-toc-header">Contents</div>
//	<ol><li><a href="#intro">Intro</a></li></ol>
//	</div><div class="autoanchors-advert">&nbsp;</div></div>
//	<h1><a id="intro" href="#intro" class="autoanchors-anchor">Intro</a></h1>
//
// (shown wrapped; the output has no newlines). Content without headers is
// returned unchanged, as is any content rendered outside a single view.
//
// # Options
//
// Use New for a configured Transformer:
//
//	t := autoanchors.New(
//	    autoanchors.WithLabel("Sommaire"),
//	    autoanchors.WithAdvert(false),
//	)
//	out := t.Apply(body, rc)
//
// Apply is not idempotent: a second pass wraps the anchors again and adds a
// second table of contents. Apply each page once.
//
// # Slugs
//
// Slugs are derived from the title markup: transliterated to ASCII, stripped
// of everything but letters, digits and separators, separators collapsed to
// "-", lowercased and URL-encoded. "Café & Co." becomes "cafe-co". Slugs are
// not made unique; two headers with the same title share an id.
//
// # Stylesheet
//
// The markup classes are styled by a built-in stylesheet. Hosts register it
// once at startup:
//
//	err := autoanchors.RegisterStyles(registrar, "https://example.com/plugins/autoanchors/")
//
// or inline it with Stylesheet.
//
// # Documents, Markdown and PDF
//
// Converter handles whole files: Markdown is rendered with goldmark, full HTML
// documents have only their body transformed, and the result can be printed
// to PDF through headless Chrome:
//
//	conv, err := autoanchors.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, autoanchors.Input{
//	    Content: markdown,
//	    Format:  autoanchors.FormatMarkdown,
//	    PDF:     true,
//	})
//
// For batches, ConverterPool bounds the number of browser instances.
package autoanchors
