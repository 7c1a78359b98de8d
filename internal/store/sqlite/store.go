// Package sqlite is the row-store backing the proxy: the tenant directory
// (organizations, memberships) and the append-only debug-event audit trail.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // database/sql driver

	"github.com/prismaglow/chatproxy/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS organizations (
	id   TEXT PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS memberships (
	org_id  TEXT NOT NULL,
	user_id TEXT NOT NULL,
	role    TEXT NOT NULL DEFAULT 'MEMBER',
	PRIMARY KEY (org_id, user_id)
);

CREATE TABLE IF NOT EXISTS openai_debug_events (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id      TEXT NOT NULL,
	endpoint        TEXT NOT NULL,
	metadata        TEXT NOT NULL,
	request_payload TEXT,
	created_at      TEXT NOT NULL
);
`

// Store provides directory lookups and debug-event appends over SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the store at the given DSN. Use ":memory:" for an
// ephemeral store in tests.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("store DSN cannot be empty")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Serialize access; the modernc driver returns SQLITE_BUSY under
	// concurrent writers otherwise.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Authorize resolves orgSlug and verifies userID belongs to it.
func (s *Store) Authorize(ctx context.Context, orgSlug, userID string) (*domain.Organization, error) {
	var org domain.Organization
	err := s.db.QueryRowContext(ctx,
		`SELECT id, slug FROM organizations WHERE slug = ?`, orgSlug,
	).Scan(&org.ID, &org.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}

	var member int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM memberships WHERE org_id = ? AND user_id = ?`, org.ID, userID,
	).Scan(&member)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if member == 0 {
		return nil, domain.ErrNotMember
	}

	return &org, nil
}

// UpsertOrganization inserts or updates an organization row.
func (s *Store) UpsertOrganization(ctx context.Context, org domain.Organization) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organizations (id, slug) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET slug = excluded.slug`,
		org.ID, org.Slug,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert organization: %w", err)
	}
	return nil
}

// AddMember adds a user to an organization.
func (s *Store) AddMember(ctx context.Context, orgID, userID, role string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memberships (org_id, user_id, role) VALUES (?, ?, ?)
		 ON CONFLICT (org_id, user_id) DO UPDATE SET role = excluded.role`,
		orgID, userID, role,
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// Append inserts one debug event. Rows are never updated or deleted.
func (s *Store) Append(ctx context.Context, event *domain.DebugEvent) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal event metadata: %w", err)
	}

	var payload any
	if len(event.RequestPayload) > 0 {
		payload = string(event.RequestPayload)
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO openai_debug_events (request_id, endpoint, metadata, request_payload, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.RequestID, event.Endpoint, string(metadata), payload, createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to append debug event: %w", err)
	}

	return nil
}

// ListEvents returns all debug events in insertion order. Used by audit
// tooling and tests; the table itself stays append-only.
func (s *Store) ListEvents(ctx context.Context) ([]domain.DebugEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT request_id, endpoint, metadata, request_payload, created_at
		 FROM openai_debug_events ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debug events: %w", err)
	}
	defer rows.Close()

	var events []domain.DebugEvent
	for rows.Next() {
		var (
			event     domain.DebugEvent
			metadata  string
			payload   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&event.RequestID, &event.Endpoint, &metadata, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan debug event: %w", err)
		}
		if err := json.Unmarshal([]byte(metadata), &event.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
		}
		if payload.Valid {
			event.RequestPayload = json.RawMessage(payload.String)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			event.CreatedAt = ts
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debug events: %w", err)
	}

	return events, nil
}
