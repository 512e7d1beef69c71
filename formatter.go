package pagemark

import (
	"regexp"
	"strings"
	"time"
)

// SnippetLength is the maximum number of content characters shown in list
// and search views before truncation.
const SnippetLength = 200

// Ellipsis marks a truncated snippet.
const Ellipsis = "..."

// Snippet truncates content for display, trimming trailing whitespace from
// the cut. It reports whether truncation removed any characters so callers
// can offer a full-entry view.
func Snippet(content string) (string, bool) {
	runes := []rune(content)
	if len(runes) <= SnippetLength {
		return content, false
	}
	return strings.TrimRight(string(runes[:SnippetLength]), " \t\r\n") + Ellipsis, true
}

// Span is a segment of text to be highlighted. Match is true when the
// segment is a literal, case-insensitive occurrence of the search term.
type Span struct {
	Text  string
	Match bool
}

// MatchSpans splits text into spans around literal occurrences of term.
// Pattern metacharacters in the term are neutralized, so "c.t" matches only
// the literal string "c.t". An empty term yields the whole text as a single
// non-match span.
func MatchSpans(text, term string) []Span {
	if term == "" {
		return []Span{{Text: text}}
	}

	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))

	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) || len(spans) == 0 {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// Highlight wraps every literal, case-insensitive occurrence of term in
// text with the given markers. An empty term returns text unchanged.
func Highlight(text, term, openMark, closeMark string) string {
	var b strings.Builder
	for _, span := range MatchSpans(text, term) {
		if span.Match {
			b.WriteString(openMark)
			b.WriteString(span.Text)
			b.WriteString(closeMark)
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// Entry is the presentation form of a page for list and search views.
type Entry struct {
	ID        int64
	URL       string
	Snippet   string
	CreatedAt time.Time
	Truncated bool
}

// NewEntry builds the list-view form of a page.
func NewEntry(p *Page) Entry {
	snippet, truncated := Snippet(p.Content)
	return Entry{
		ID:        p.ID,
		URL:       p.URL,
		Snippet:   snippet,
		CreatedAt: p.CreatedAt,
		Truncated: truncated,
	}
}
