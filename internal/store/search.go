// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// search.go records the searches users run from the query page so the
// most common ones can be reviewed later.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxSearchLength is the longest search text stored, in characters.
const MaxSearchLength = 150

// SearchStore handles search log operations.
type SearchStore struct {
	db *sql.DB
}

// NewSearchStore creates a new SearchStore.
func NewSearchStore(db *sql.DB) *SearchStore {
	return &SearchStore{db: db}
}

// Search is a single recorded search.
type Search struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Page      string    `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeSearch trims surrounding whitespace and truncates text to
// MaxSearchLength characters.
func NormalizeSearch(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= MaxSearchLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:MaxSearchLength]))
}

// Record stores a search made from page. Blank searches are skipped and
// reported with ok == false.
func (s *SearchStore) Record(ctx context.Context, text, page string) (ok bool, err error) {
	text = NormalizeSearch(text)
	if text == "" {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO search_queries (id, text, page)
		VALUES ($1, $2, $3)
	`, uuid.New(), text, page)
	if err != nil {
		return false, fmt.Errorf("insert search: %w", err)
	}
	return true, nil
}

// Recent returns the latest searches, newest first.
func (s *SearchStore) Recent(ctx context.Context, limit int) ([]Search, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, page, created_at
		FROM search_queries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query searches: %w", err)
	}
	defer rows.Close()

	var out []Search
	for rows.Next() {
		var q Search
		if err := rows.Scan(&q.ID, &q.Text, &q.Page, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
