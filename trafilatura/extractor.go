// Package trafilatura provides an article-mode extractor that reduces a
// page to its boilerplate-free title and body text.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagemark"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagemark.Extractor at compile time.
var _ pagemark.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Unlike the canonical element extractor it
// keeps only the main article content, which suits long-form pages where
// form fields and navigation are noise.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns "title: ..." and "content: ..." lines for the main
// article. A page with no extractable article yields an empty string.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", pagemark.Errorf(pagemark.EINVALID, "failed to extract article: %v", err)
	}

	var lines []string
	if title := strings.TrimSpace(result.Metadata.Title); title != "" {
		lines = append(lines, "title: "+title)
	}
	if text := strings.TrimSpace(result.ContentText); text != "" {
		lines = append(lines, "content: "+text)
	}
	return strings.Join(lines, "\n"), nil
}
