package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/form"
)

// Get implements ports.FormRepository. Version 0 selects the latest.
func (s *FormStore) Get(ctx context.Context, id string, version int) (*form.Schema, error) {
	query := `SELECT body FROM form_schemas WHERE id = ? AND version = ?`
	args := []any{id, version}
	if version == 0 {
		query = `SELECT body FROM form_schemas WHERE id = ? ORDER BY version DESC LIMIT 1`
		args = args[:1]
	}

	var body []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&body); err != nil {
		return nil, notFound("form", fmt.Sprintf("%s@v%d", id, version), err)
	}

	var schema form.Schema
	if err := json.Unmarshal(body, &schema); err != nil {
		return nil, fmt.Errorf("decoding form %s: %w", id, err)
	}
	return &schema, nil
}

// List implements ports.FormRepository.
func (s *FormStore) List(ctx context.Context) ([]form.Schema, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.body FROM form_schemas f
		JOIN (SELECT id, MAX(version) AS version FROM form_schemas GROUP BY id) latest
			ON latest.id = f.id AND latest.version = f.version
		ORDER BY f.id`)
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}
	defer rows.Close()

	out := []form.Schema{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning form: %w", err)
		}
		var schema form.Schema
		if err := json.Unmarshal(body, &schema); err != nil {
			return nil, fmt.Errorf("decoding form: %w", err)
		}
		out = append(out, schema)
	}
	return out, rows.Err()
}

// Save implements ports.FormRepository. Saving identical content again is a
// no-op; a stored version is never rewritten.
func (s *FormStore) Save(ctx context.Context, schema *form.Schema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encoding form %s: %w", schema.ID, err)
	}

	var existing []byte
	err = s.db.QueryRowContext(ctx,
		`SELECT body FROM form_schemas WHERE id = ? AND version = ?`, schema.ID, schema.Version).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("checking form %s: %w", schema.ID, err)
	default:
		if bytes.Equal(existing, body) {
			return nil
		}
		return fmt.Errorf("form %s version %d already stored with different content: %w",
			schema.ID, schema.Version, domain.ErrConflict)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO form_schemas (id, version, body) VALUES (?, ?, ?)`,
		schema.ID, schema.Version, string(body)); err != nil {
		return fmt.Errorf("storing form %s: %w", schema.ID, err)
	}
	return nil
}

// Create implements ports.SubmissionRepository.
func (s *FormStore) Create(ctx context.Context, sub *form.Submission) error {
	answers, err := json.Marshal(sub.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	attachments, err := json.Marshal(sub.Attachments)
	if err != nil {
		return fmt.Errorf("encoding attachments: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, schema_id, schema_version, answers, attachments, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.SchemaID, sub.SchemaVersion, string(answers), string(attachments), sub.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("storing submission %s: %w", sub.ID, err)
	}
	return nil
}

// Submission returns a stored submission by ID.
func (s *FormStore) Submission(ctx context.Context, id string) (*form.Submission, error) {
	var (
		sub                  form.Submission
		answers, attachments []byte
		created              string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, schema_id, schema_version, answers, attachments, created_at FROM submissions WHERE id = ?`, id,
	).Scan(&sub.ID, &sub.SchemaID, &sub.SchemaVersion, &answers, &attachments, &created)
	if err != nil {
		return nil, notFound("submission", id, err)
	}

	if err := json.Unmarshal(answers, &sub.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if err := json.Unmarshal(attachments, &sub.Attachments); err != nil {
		return nil, fmt.Errorf("decoding attachments: %w", err)
	}
	if sub.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &sub, nil
}
