// Package goquery provides the canonical HTML content extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemark.Extractor at compile time.
var _ pagemark.Extractor = (*Extractor)(nil)

// interestSelector matches every element kind that contributes a line to
// the canonical content.
const interestSelector = "p, h1, h2, h3, li, input, textarea, select, option, a, div, span, button, script"

// keyRule derives the key half of a "key: value" line from an element.
// An empty result means the rule does not apply and the next one is tried.
type keyRule struct {
	name   string
	derive func(sel *goquery.Selection) string
}

// keyRules is the ordered fallback chain for key selection. Semantic labels
// come first; the tag rule is terminal and never empty, so every element
// gets a key.
var keyRules = []keyRule{
	{name: "aria-label", derive: attrRule("aria-label")},
	{name: "label", derive: attrRule("label")},
	{name: "name", derive: attrRule("name")},
	{name: "id", derive: attrRule("id")},
	{name: "class", derive: classRule},
	{name: "tag", derive: tagRule},
}

func attrRule(attr string) func(*goquery.Selection) string {
	return func(sel *goquery.Selection) string {
		return sel.AttrOr(attr, "")
	}
}

// classRule joins the element's class names with single spaces.
func classRule(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.AttrOr("class", "")), " ")
}

func tagRule(sel *goquery.Selection) string {
	return goquery.NodeName(sel)
}

// Extractor reduces an HTML document to ordered "key: value" lines.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the document and emits one line per element of interest
// with a non-empty value, in document order. Elements with no extractable
// value contribute nothing. A document with no qualifying elements yields
// an empty string.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagemark.Errorf(pagemark.EINVALID, "failed to parse HTML: %v", err)
	}

	var lines []string
	doc.Find(interestSelector).Each(func(_ int, sel *goquery.Selection) {
		value := elementValue(sel)
		if value == "" {
			return
		}
		lines = append(lines, elementKey(sel)+": "+value)
	})

	return strings.Join(lines, "\n"), nil
}

// elementKey evaluates the key rules in order and returns the first
// non-empty result.
func elementKey(sel *goquery.Selection) string {
	for _, rule := range keyRules {
		if key := rule.derive(sel); key != "" {
			return key
		}
	}
	// Unreachable: the tag rule is terminal.
	return goquery.NodeName(sel)
}

// elementValue derives the value half of a line by element kind.
func elementValue(sel *goquery.Selection) string {
	switch goquery.NodeName(sel) {
	case "input":
		return sel.AttrOr("value", "")
	case "textarea":
		return strings.TrimSpace(sel.Text())
	case "select":
		selected := sel.Find("option[selected]").First()
		if selected.Length() == 0 {
			return ""
		}
		return strings.TrimSpace(selected.Text())
	case "option":
		return strings.TrimSpace(sel.Text())
	default:
		return visibleText(sel)
	}
}

// visibleText concatenates the individually trimmed text nodes under the
// selection, dropping inter-element whitespace entirely.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		collectText(node, &b)
	}
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
