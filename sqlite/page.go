package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemark"
)

// Compile-time interface verification.
var _ pagemark.PageService = (*PageService)(nil)

// PageService implements pagemark.PageService using SQLite with an FTS5
// search index. Every mutation touches the pages table and the pages_fts
// index inside one transaction, so a query can never observe a page without
// its index entry or an index entry without its page.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// IndexPage inserts the page or updates the existing row for its URL. The
// index entry is always replaced wholesale: the old FTS row is removed with
// the FTS5 'delete' command and a fresh one inserted for the new content.
func (s *PageService) IndexPage(ctx context.Context, page *pagemark.Page, overwrite bool) error {
	if err := page.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingID int64
	var oldURL, oldContent string
	found := true
	err = tx.QueryRowContext(ctx,
		"SELECT id, url, content FROM pages WHERE url = ? ORDER BY id LIMIT 1",
		page.URL,
	).Scan(&existingID, &oldURL, &oldContent)
	if err == sql.ErrNoRows {
		found = false
	} else if err != nil {
		return err
	}

	if found && !overwrite {
		return pagemark.Errorf(pagemark.ECONFLICT, "page for url %q already exists", page.URL)
	}

	page.ContentHash = hashContent(page.Content)
	page.CreatedAt = time.Now().UTC()
	createdAt := page.CreatedAt.Format(time.RFC3339Nano)

	if found {
		if _, err := tx.ExecContext(ctx,
			"UPDATE pages SET content = ?, content_hash = ?, created_at = ? WHERE id = ?",
			page.Content, page.ContentHash, createdAt, existingID); err != nil {
			return err
		}
		// External-content FTS5 tables require the special 'delete'
		// command with the old row values; a plain DELETE corrupts the
		// index.
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pages_fts(pages_fts, rowid, url, content) VALUES ('delete', ?, ?, ?)",
			existingID, oldURL, oldContent); err != nil {
			return err
		}
		page.ID = existingID
	} else {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO pages (url, content, content_hash, created_at) VALUES (?, ?, ?, ?)",
			page.URL, page.Content, page.ContentHash, createdAt)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		page.ID = id
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO pages_fts(rowid, url, content) VALUES (?, ?, ?)",
		page.ID, page.URL, page.Content); err != nil {
		return err
	}

	return tx.Commit()
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id int64) (*pagemark.Page, error) {
	var page pagemark.Page
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, content, content_hash, created_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.URL, &page.Content, &page.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "no such entry: %d", id)
	}
	if err != nil {
		return nil, err
	}

	page.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// SearchPages returns pages matching the term, most recently indexed first.
// Both match paths run in one SELECT over pages, so each id appears at most
// once in the result.
func (s *PageService) SearchPages(ctx context.Context, term string) ([]*pagemark.Page, error) {
	term = strings.TrimSpace(term)

	var rows *sql.Rows
	var err error
	switch {
	case term == "":
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, url, content, content_hash, created_at
			FROM pages
			ORDER BY created_at DESC, id DESC
		`)
	case !hasToken(term):
		// Nothing would survive FTS tokenization; only the substring
		// match on url can apply.
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, url, content, content_hash, created_at
			FROM pages
			WHERE url LIKE ? ESCAPE '\'
			ORDER BY created_at DESC, id DESC
		`, likePattern(term))
	default:
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, url, content, content_hash, created_at
			FROM pages
			WHERE id IN (SELECT rowid FROM pages_fts WHERE pages_fts MATCH ?)
			   OR url LIKE ? ESCAPE '\'
			ORDER BY created_at DESC, id DESC
		`, ftsPrefixQuery(term), likePattern(term))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagemark.Page
	for rows.Next() {
		var page pagemark.Page
		var createdAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Content, &page.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		page.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePage removes a page and its index entry in one transaction.
// Deleting a missing id is a no-op.
func (s *PageService) DeletePage(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var url, content string
	err = tx.QueryRowContext(ctx, "SELECT url, content FROM pages WHERE id = ?", id).Scan(&url, &content)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO pages_fts(pages_fts, rowid, url, content) VALUES ('delete', ?, ?, ?)",
		id, url, content); err != nil {
		return err
	}

	return tx.Commit()
}

// VerifyIndex cross-checks pages against pages_fts rowids. Drift means a
// past mutation escaped its transaction; it is reported, never repaired
// silently.
func (s *PageService) VerifyIndex(ctx context.Context) error {
	var orphaned int
	if err := s.db.QueryRowContext(ctx, `
		SELECT count(*) FROM pages_fts WHERE rowid NOT IN (SELECT id FROM pages)
	`).Scan(&orphaned); err != nil {
		return err
	}

	var unindexed int
	if err := s.db.QueryRowContext(ctx, `
		SELECT count(*) FROM pages WHERE id NOT IN (SELECT rowid FROM pages_fts)
	`).Scan(&unindexed); err != nil {
		return err
	}

	if orphaned > 0 || unindexed > 0 {
		return pagemark.Errorf(pagemark.EINTERNAL,
			"search index out of sync: %d orphaned index entries, %d unindexed pages", orphaned, unindexed)
	}
	return nil
}

// ftsPrefixQuery builds an FTS5 prefix-phrase expression for a raw term.
// The term is quoted with embedded quotes doubled so user input cannot
// inject query syntax; the star outside the closing quote requests prefix
// matching on the final token.
func ftsPrefixQuery(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"*`
}

// likePattern escapes LIKE wildcards in the term and wraps it for a
// substring match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// hasToken reports whether the term contains at least one character that
// survives FTS tokenization.
func hasToken(term string) bool {
	for _, r := range term {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
