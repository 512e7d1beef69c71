// Package pagemark provides a personal web page archive with full-text
// search. It fetches pages, reduces them to canonical "key: value" text,
// stores them in SQLite and keeps an FTS5 index in lockstep with the store
// so entries are searchable with prefix matching and highlighted snippets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package pagemark
