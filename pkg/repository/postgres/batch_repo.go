package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/resumeparser/pkg/resume"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BatchRepository хранит партии разобранных резюме и их записи.
type BatchRepository struct {
	db DB
}

func NewBatchRepository(ctx context.Context, db DB) (*BatchRepository, error) {
	r := &BatchRepository{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return r, nil
}

func (r *BatchRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS batches (
	id UUID PRIMARY KEY,
	source TEXT NOT NULL,
	total INT NOT NULL,
	failed INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS parsed_records (
	batch_id UUID NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	position INT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	skills TEXT[] NOT NULL,
	file TEXT NOT NULL,
	status TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	field_errors JSONB,
	PRIMARY KEY (batch_id, position)
);
`)
	return err
}

func (r *BatchRepository) Save(ctx context.Context, b resume.Batch) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
INSERT INTO batches (id, source, total, failed, created_at)
VALUES ($1, $2, $3, $4, $5)
`, b.ID, string(b.Source), b.Total, b.Failed, b.CreatedAt); err != nil {
		return err
	}
	for i, rec := range b.Records {
		var fieldErrors []byte
		if len(rec.FieldErrors) > 0 {
			if fieldErrors, err = json.Marshal(rec.FieldErrors); err != nil {
				return err
			}
		}
		skills := rec.Skills
		if skills == nil {
			skills = []string{}
		}
		if _, err = tx.Exec(ctx, `
INSERT INTO parsed_records (batch_id, position, name, email, phone, skills, file, status, error, field_errors)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, b.ID, i, rec.Name, rec.Email, rec.Phone, skills, rec.File, string(rec.Status), rec.Error, fieldErrors); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *BatchRepository) Get(ctx context.Context, id uuid.UUID) (resume.Batch, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, source, total, failed, created_at FROM batches WHERE id = $1
`, id)
	b, err := scanBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Batch{}, resume.ErrNotFound
		}
		return resume.Batch{}, err
	}

	rows, err := r.db.Query(ctx, `
SELECT name, email, phone, skills, file, status, error, field_errors
FROM parsed_records WHERE batch_id = $1
ORDER BY position
`, id)
	if err != nil {
		return resume.Batch{}, err
	}
	defer rows.Close()
	b.Records = []resume.Record{}
	for rows.Next() {
		var rec resume.Record
		var status string
		var fieldErrors []byte
		if err := rows.Scan(&rec.Name, &rec.Email, &rec.Phone, &rec.Skills, &rec.File, &status, &rec.Error, &fieldErrors); err != nil {
			return resume.Batch{}, err
		}
		rec.Status = resume.RecordStatus(status)
		if len(fieldErrors) > 0 {
			if err := json.Unmarshal(fieldErrors, &rec.FieldErrors); err != nil {
				return resume.Batch{}, fmt.Errorf("decode field errors: %w", err)
			}
		}
		b.Records = append(b.Records, rec)
	}
	return b, rows.Err()
}

func (r *BatchRepository) List(ctx context.Context, limit, offset int) ([]resume.Batch, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
SELECT id, source, total, failed, created_at
FROM batches
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func scanBatch(row pgx.Row) (resume.Batch, error) {
	var b resume.Batch
	var source string
	var created time.Time
	if err := row.Scan(&b.ID, &source, &b.Total, &b.Failed, &created); err != nil {
		return resume.Batch{}, err
	}
	b.Source = resume.Source(source)
	b.CreatedAt = created.UTC()
	return b, nil
}
