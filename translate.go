package pagemark

// Translations is a read-only catalog of UI strings keyed by message id.
// It is passed explicitly to whichever component renders display strings;
// nothing in the core depends on it.
type Translations map[string]string

// Get returns the translation for key, falling back to the key itself when
// the catalog has no entry.
func (t Translations) Get(key string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// DefaultTranslations returns the built-in English catalog.
func DefaultTranslations() Translations {
	return Translations{
		"title":          "Pagemark",
		"search":         "Search",
		"add":            "Add page",
		"no_results":     "No entries found.",
		"no_such_entry":  "No such entry",
		"confirm_update": "This URL is already saved. Save it again?",
		"network_error":  "Could not fetch the page.",
		"parse_error":    "Could not parse the page.",
		"view_full":      "View full entry",
		"delete":         "Delete",
	}
}
