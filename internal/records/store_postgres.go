package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists records through a pgx connection pool. All statements
// use positional parameters; bounded waits come from the pool and server-side
// timeouts, the store adds no cancellation of its own.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the cases and notes tables when missing. Timestamps are
// kept as text so the store round-trips exactly what the pipeline hands it;
// ISO-8601 strings order correctly.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS cases (
			id          BIGINT PRIMARY KEY,
			title       TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			priority    TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			resolution  TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL DEFAULT '',
			resolved_at TEXT
		);
		CREATE TABLE IF NOT EXISTS notes (
			id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			category TEXT NOT NULL DEFAULT '',
			content  TEXT NOT NULL DEFAULT ''
		);
	`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListCases(ctx context.Context) ([]Case, error) {
	const query = `
		SELECT id, title, category, priority, description, resolution, created_at, resolved_at
		FROM cases
		ORDER BY created_at DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	var cases []Case
	for rows.Next() {
		var c Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Category, &c.Priority,
			&c.Description, &c.Resolution, &c.CreatedAt, &c.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

func (s *PostgresStore) CreateCase(ctx context.Context, c Case) error {
	const query = `
		INSERT INTO cases (id, title, category, priority, description, resolution, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.pool.Exec(ctx, query,
		c.ID, c.Title, c.Category, c.Priority, c.Description, c.Resolution, c.CreatedAt, c.ResolvedAt)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateCase(ctx context.Context, id int64, u CaseUpdate) error {
	const query = `
		UPDATE cases
		SET title = $1, category = $2, priority = $3, description = $4, resolution = $5, resolved_at = $6
		WHERE id = $7
	`
	_, err := s.pool.Exec(ctx, query,
		u.Title, u.Category, u.Priority, u.Description, u.Resolution, u.ResolvedAt, id)
	if err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteCase(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListNotes(ctx context.Context) ([]Note, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, category, content FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Category, &n.Content); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

func (s *PostgresStore) CreateNote(ctx context.Context, category, content string) (int64, error) {
	const query = `INSERT INTO notes (category, content) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := s.pool.QueryRow(ctx, query, category, content).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) UpdateNote(ctx context.Context, id int64, content string) error {
	if _, err := s.pool.Exec(ctx, `UPDATE notes SET content = $1 WHERE id = $2`, content, id); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteNote(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
