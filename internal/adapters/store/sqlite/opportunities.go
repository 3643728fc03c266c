package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/pipeline"
)

const opportunityColumns = `id, title, pipeline, stage, amount, currency, linked_record`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOpportunity(row rowScanner) (pipeline.Opportunity, error) {
	var o pipeline.Opportunity
	err := row.Scan(&o.ID, &o.Title, &o.Pipeline, &o.Stage, &o.Amount, &o.Currency, &o.LinkedRecord)
	return o, err
}

// Get implements ports.OpportunityRepository.
func (s *Store) Get(ctx context.Context, id int64) (*pipeline.Opportunity, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = ?`, id)
	o, err := scanOpportunity(row)
	if err != nil {
		return nil, notFound("opportunity", id, err)
	}
	return &o, nil
}

// ListByPipeline implements ports.OpportunityRepository.
func (s *Store) ListByPipeline(ctx context.Context, pipelineKey string) ([]pipeline.Opportunity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE pipeline = ? ORDER BY id`, pipelineKey)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}
	defer rows.Close()

	out := []pipeline.Opportunity{}
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning opportunity: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateStage implements ports.OpportunityRepository. The move is recorded
// in the activity log in the same transaction.
func (s *Store) UpdateStage(ctx context.Context, id int64, stage string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE opportunities SET stage = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, stage, id)
		if err != nil {
			return fmt.Errorf("updating stage: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("opportunity %d: %w", id, domain.ErrNotFound)
		}
		return logActivity(ctx, tx, id, "Stage moved to "+stage)
	})
}

// Save implements ports.OpportunityRepository. A zero ID inserts.
func (s *Store) Save(ctx context.Context, opp *pipeline.Opportunity) (*pipeline.Opportunity, error) {
	if err := opp.Validate(); err != nil {
		return nil, err
	}

	out := *opp
	if opp.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO opportunities (title, pipeline, stage, amount, currency, linked_record) VALUES (?, ?, ?, ?, ?, ?)`,
			opp.Title, opp.Pipeline, opp.Stage, opp.Amount, opp.Currency, opp.LinkedRecord)
		if err != nil {
			return nil, fmt.Errorf("inserting opportunity: %w", err)
		}
		if out.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("reading opportunity id: %w", err)
		}
		return &out, nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO opportunities (id, title, pipeline, stage, amount, currency, linked_record)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			pipeline = excluded.pipeline,
			stage = excluded.stage,
			amount = excluded.amount,
			currency = excluded.currency,
			linked_record = excluded.linked_record,
			updated_at = CURRENT_TIMESTAMP`,
		opp.ID, opp.Title, opp.Pipeline, opp.Stage, opp.Amount, opp.Currency, opp.LinkedRecord)
	if err != nil {
		return nil, fmt.Errorf("saving opportunity %d: %w", opp.ID, err)
	}
	return &out, nil
}

// ConvertToRecord implements ports.RecordConverter: it creates one project
// for the opportunity and links it.
func (s *Store) ConvertToRecord(ctx context.Context, opp *pipeline.Opportunity) (string, error) {
	var location string
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var linked string
		err := tx.QueryRowContext(ctx, `SELECT linked_record FROM opportunities WHERE id = ?`, opp.ID).Scan(&linked)
		if err != nil {
			return notFound("opportunity", opp.ID, err)
		}
		if linked != "" {
			return fmt.Errorf("opportunity %d already linked to %s: %w", opp.ID, linked, domain.ErrConflict)
		}

		res, err := tx.ExecContext(ctx, `INSERT INTO projects (name, opportunity_id) VALUES (?, ?)`, opp.Title, opp.ID)
		if err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		pid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading project id: %w", err)
		}

		location = fmt.Sprintf("/projects/%d", pid)
		if _, err := tx.ExecContext(ctx,
			`UPDATE opportunities SET linked_record = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			location, opp.ID); err != nil {
			return fmt.Errorf("linking project: %w", err)
		}
		return logActivity(ctx, tx, opp.ID, "Converted to project")
	})
	if err != nil {
		return "", err
	}
	return location, nil
}

// Activity is one entry of an opportunity's history.
type Activity struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}

// Activities returns the history of an opportunity, oldest first.
func (s *Store) Activities(ctx context.Context, opportunityID int64) ([]Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, strftime('%Y-%m-%dT%H:%M:%SZ', created_at)
		FROM activities WHERE parent_type = 'opportunity' AND parent_id = ? ORDER BY id`,
		opportunityID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		var created string
		if err := rows.Scan(&a.ID, &a.Title, &created); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, a)
	}
	return out, rows.Err()
}

func logActivity(ctx context.Context, tx *sql.Tx, opportunityID int64, title string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO activities (parent_type, parent_id, title) VALUES ('opportunity', ?, ?)`,
		opportunityID, title)
	if err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}
