package api

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderNarrative converts narrative markdown to HTML. Raw HTML in the input is dropped.
func RenderNarrative(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML | html.HrefTargetBlank})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, renderer)))
}
