package pagemark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemark"
	"github.com/stretchr/testify/assert"
)

func TestSnippet(t *testing.T) {
	t.Parallel()

	t.Run("returns short content unmodified", func(t *testing.T) {
		t.Parallel()

		snippet, truncated := pagemark.Snippet("title: hello")
		assert.Equal(t, "title: hello", snippet)
		assert.False(t, truncated)
	})

	t.Run("content at exactly the limit is not truncated", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", pagemark.SnippetLength)
		snippet, truncated := pagemark.Snippet(content)
		assert.Equal(t, content, snippet)
		assert.False(t, truncated)
	})

	t.Run("truncates long content and appends ellipsis", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", pagemark.SnippetLength+1)
		snippet, truncated := pagemark.Snippet(content)
		assert.True(t, truncated)
		assert.Equal(t, strings.Repeat("a", pagemark.SnippetLength)+pagemark.Ellipsis, snippet)
		assert.LessOrEqual(t, len([]rune(snippet)), pagemark.SnippetLength+len(pagemark.Ellipsis))
	})

	t.Run("trims trailing whitespace before the ellipsis", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", pagemark.SnippetLength-2) + "  \nmore"
		snippet, truncated := pagemark.Snippet(content)
		assert.True(t, truncated)
		assert.Equal(t, strings.Repeat("a", pagemark.SnippetLength-2)+pagemark.Ellipsis, snippet)
	})
}

func TestMatchSpans(t *testing.T) {
	t.Parallel()

	t.Run("empty term yields a single non-match span", func(t *testing.T) {
		t.Parallel()

		spans := pagemark.MatchSpans("the category page", "")
		assert.Equal(t, []pagemark.Span{{Text: "the category page"}}, spans)
	})

	t.Run("matches a term inside a longer word", func(t *testing.T) {
		t.Parallel()

		spans := pagemark.MatchSpans("the category page", "cat")
		assert.Equal(t, []pagemark.Span{
			{Text: "the "},
			{Text: "cat", Match: true},
			{Text: "egory page"},
		}, spans)
	})

	t.Run("matches case-insensitively preserving original text", func(t *testing.T) {
		t.Parallel()

		spans := pagemark.MatchSpans("Category and CATALOG", "cat")
		assert.Equal(t, []pagemark.Span{
			{Text: "Cat", Match: true},
			{Text: "egory and "},
			{Text: "CAT", Match: true},
			{Text: "ALOG"},
		}, spans)
	})

	t.Run("treats pattern metacharacters literally", func(t *testing.T) {
		t.Parallel()

		spans := pagemark.MatchSpans("the category page", "c.t")
		assert.Equal(t, []pagemark.Span{{Text: "the category page"}}, spans)

		spans = pagemark.MatchSpans("see c.t here", "c.t")
		assert.Equal(t, []pagemark.Span{
			{Text: "see "},
			{Text: "c.t", Match: true},
			{Text: " here"},
		}, spans)
	})

	t.Run("empty text yields a single empty span", func(t *testing.T) {
		t.Parallel()

		spans := pagemark.MatchSpans("", "cat")
		assert.Equal(t, []pagemark.Span{{Text: ""}}, spans)
	})
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	t.Run("wraps every occurrence", func(t *testing.T) {
		t.Parallel()

		got := pagemark.Highlight("the category page", "cat", "<mark>", "</mark>")
		assert.Equal(t, "the <mark>cat</mark>egory page", got)
	})

	t.Run("empty term is an identity pass-through", func(t *testing.T) {
		t.Parallel()

		got := pagemark.Highlight("the category page", "", "<mark>", "</mark>")
		assert.Equal(t, "the category page", got)
	})
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	t.Run("short content keeps truncated false", func(t *testing.T) {
		t.Parallel()

		entry := pagemark.NewEntry(&pagemark.Page{ID: 1, URL: "https://example.com", Content: "p: hi"})
		assert.Equal(t, int64(1), entry.ID)
		assert.Equal(t, "p: hi", entry.Snippet)
		assert.False(t, entry.Truncated)
	})

	t.Run("long content sets truncated", func(t *testing.T) {
		t.Parallel()

		entry := pagemark.NewEntry(&pagemark.Page{ID: 2, URL: "https://example.com", Content: strings.Repeat("x", 500)})
		assert.True(t, entry.Truncated)
		assert.True(t, strings.HasSuffix(entry.Snippet, pagemark.Ellipsis))
	})
}
