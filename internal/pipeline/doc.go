// Package pipeline implements the header anchoring pass.
//
// A pass runs three stages over one content string:
//   - ScanHeaders finds <h1>..<h6> elements in document order
//   - InjectAnchors wraps each header title in a self-referencing anchor
//   - BuildTOC renders a nested <ol> table of contents from the same headers
//
// Transform composes them, prepending the TOC to the anchored content.
// TransformDocument does the same for full HTML documents, limited to the body.
// Both share Slug, so anchor ids and TOC links always agree.
//
// Markdown rendering (goldmark), stylesheet inlining and local reference
// rewriting prepare input and output around the pass.
package pipeline
