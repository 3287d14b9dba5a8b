package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iamasit07/connectz/internal/domain"
)

type VerdictRepo struct {
	DB      *sql.DB
	dialect dialect
}

func NewVerdictRepo(db *sql.DB, driver string) *VerdictRepo {
	return &VerdictRepo{DB: db, dialect: dialects[driver]}
}

const verdictColumns = `id, name, digest, outcome, code, moves, width, height, connect, created_at`

// Save records a classified replay
func (r *VerdictRepo) Save(ctx context.Context, v *domain.Verdict) error {
	query := r.dialect.rebind(`
	INSERT INTO replay_verdict (` + verdictColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)

	_, err := r.DB.ExecContext(ctx, query,
		v.ID, v.Name, v.Digest, string(v.Outcome), v.Code, v.Moves,
		v.Geometry.Width, v.Geometry.Height, v.Geometry.Connect, v.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert verdict: %w", err)
	}
	return nil
}

// GetByID returns the verdict with id, or nil when there is none
func (r *VerdictRepo) GetByID(ctx context.Context, id string) (*domain.Verdict, error) {
	query := r.dialect.rebind(`SELECT ` + verdictColumns + ` FROM replay_verdict WHERE id = ?;`)

	v, err := scanVerdict(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verdict by ID: %w", err)
	}
	return v, nil
}

// ListRecent returns the newest verdicts first
func (r *VerdictRepo) ListRecent(ctx context.Context, limit int) ([]domain.Verdict, error) {
	query := r.dialect.rebind(`
	SELECT ` + verdictColumns + `
	FROM replay_verdict
	ORDER BY created_at DESC
	LIMIT ?;
	`)

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query verdicts: %w", err)
	}
	defer rows.Close()

	verdicts := []domain.Verdict{}
	for rows.Next() {
		v, err := scanVerdict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verdict row: %w", err)
		}
		verdicts = append(verdicts, *v)
	}
	return verdicts, rows.Err()
}

// DeleteOlderThan removes verdicts recorded more than days ago
func (r *VerdictRepo) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	query := r.dialect.rebind(`DELETE FROM replay_verdict WHERE created_at < ?;`)

	res, err := r.DB.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old verdicts: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVerdict(row rowScanner) (*domain.Verdict, error) {
	var v domain.Verdict
	var outcome string
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Digest,
		&outcome,
		&v.Code,
		&v.Moves,
		&v.Geometry.Width,
		&v.Geometry.Height,
		&v.Geometry.Connect,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Outcome = domain.Outcome(outcome)
	return &v, nil
}
