package pagemark

// Extractor reduces an HTML document to canonical searchable text: ordered,
// newline-separated "key: value" lines, one per element of interest, with
// empty values dropped. The same document always yields the same text.
type Extractor interface {
	Extract(html string) (content string, err error)
}
