// Package markup renders user-written forum text as safe HTML.
package markup

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts Markdown to sanitized HTML
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a Renderer with GitHub-flavoured Markdown and the
// bluemonday user-generated-content policy.
func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
	}
}

// Render converts source to HTML. Raw HTML in the source is stripped by the
// sanitizer, so the result is safe to embed in a page.
func (r *Renderer) Render(source string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

// Excerpt returns at most n runes of the plain source followed by an ellipsis
// when it was cut.
func Excerpt(source string, n int) string {
	runes := []rune(source)
	if n <= 0 || len(runes) <= n {
		return source
	}
	return string(runes[:n]) + "..."
}
