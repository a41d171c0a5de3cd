package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"hepi-staff/internal/domain"
)

// openSQLite se puede reemplazar en tests.
var openSQLite = sql.Open

// SQLiteHistoryRepository guarda evaluaciones hechas desde la CLI, sin Postgres.
type SQLiteHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteHistoryRepository abre (o crea) el archivo y aplica el esquema.
func NewSQLiteHistoryRepository(path string) (*SQLiteHistoryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}
	db, err := openSQLite("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS assessments (
			id          TEXT PRIMARY KEY,
			respondent  TEXT NOT NULL,
			result      TEXT NOT NULL,
			top_trait   TEXT NOT NULL,
			scores      TEXT NOT NULL,
			levels      TEXT NOT NULL,
			created_at  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return &SQLiteHistoryRepository{db: db}, nil
}

func (r *SQLiteHistoryRepository) Close() error {
	return r.db.Close()
}

// Save guarda una evaluacion; EmployeeID se usa como nombre del encuestado.
func (r *SQLiteHistoryRepository) Save(ctx context.Context, a domain.BelbinAssessment) error {
	scores, err := json.Marshal(a.Scores)
	if err != nil {
		return fmt.Errorf("history: marshal scores: %w", err)
	}
	levels, err := json.Marshal(a.Levels)
	if err != nil {
		return fmt.Errorf("history: marshal levels: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, respondent, result, top_trait, scores, levels, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.EmployeeID, a.Result, a.TopTrait, string(scores), string(levels), a.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// List devuelve las evaluaciones mas recientes primero.
func (r *SQLiteHistoryRepository) List(ctx context.Context, limit int) ([]domain.BelbinAssessment, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, respondent, result, top_trait, scores, levels, created_at FROM assessments ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []domain.BelbinAssessment
	for rows.Next() {
		var (
			a       domain.BelbinAssessment
			scores  string
			levels  string
			created string
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Result, &a.TopTrait, &scores, &levels, &created); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(scores), &a.Scores); err != nil {
			return nil, fmt.Errorf("history: decode scores: %w", err)
		}
		if err := json.Unmarshal([]byte(levels), &a.Levels); err != nil {
			return nil, fmt.Errorf("history: decode levels: %w", err)
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("history: parse created_at: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
