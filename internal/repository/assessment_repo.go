package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"hepi-staff/internal/domain"
)

// AssessmentRepository guarda los resultados del test de Belbin.
type AssessmentRepository interface {
	// Record inserta la evaluacion y actualiza employees.belbin_test_result en la misma transaccion.
	Record(ctx context.Context, assessment domain.BelbinAssessment) error
	LatestByEmployee(ctx context.Context, employeeID string) (domain.BelbinAssessment, error)
	FindSimilar(ctx context.Context, employeeID string, profile pgvector.Vector, limit int) ([]domain.SimilarEmployee, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Record(ctx context.Context, a domain.BelbinAssessment) error {
	scores, err := json.Marshal(a.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	levels, err := json.Marshal(a.Levels)
	if err != nil {
		return fmt.Errorf("marshal levels: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const insert = `
			INSERT INTO belbin_assessments (id, employee_id, result, top_trait, scores, levels, profile, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.Exec(ctx, insert,
			a.ID,
			a.EmployeeID,
			a.Result,
			a.TopTrait,
			scores,
			levels,
			a.Profile,
			a.CreatedAt,
		); err != nil {
			return err
		}

		const update = `
			UPDATE employees
			SET belbin_test_result = $2, updated_at = $3
			WHERE id = $1
		`
		tag, err := tx.Exec(ctx, update, a.EmployeeID, a.Result, a.CreatedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *PgAssessmentRepository) LatestByEmployee(ctx context.Context, employeeID string) (domain.BelbinAssessment, error) {
	const query = `
		SELECT id, employee_id, result, top_trait, scores, levels, profile, created_at
		FROM belbin_assessments
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var (
		a      domain.BelbinAssessment
		scores []byte
		levels []byte
	)
	err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Result,
		&a.TopTrait,
		&scores,
		&levels,
		&a.Profile,
		&a.CreatedAt,
	)
	if err != nil {
		return domain.BelbinAssessment{}, err
	}
	if err := json.Unmarshal(scores, &a.Scores); err != nil {
		return domain.BelbinAssessment{}, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal(levels, &a.Levels); err != nil {
		return domain.BelbinAssessment{}, fmt.Errorf("decode levels: %w", err)
	}
	return a, nil
}

func (r *PgAssessmentRepository) FindSimilar(ctx context.Context, employeeID string, profile pgvector.Vector, limit int) ([]domain.SimilarEmployee, error) {
	if limit <= 0 {
		limit = 5
	}
	// Solo cuenta la ultima evaluacion de cada empleado.
	const query = `
		WITH latest AS (
			SELECT DISTINCT ON (employee_id) employee_id, result, top_trait, profile, created_at
			FROM belbin_assessments
			WHERE employee_id <> $1
			ORDER BY employee_id, created_at DESC
		)
		SELECT l.employee_id, e.first_name, e.last_name, l.result, l.top_trait, l.profile <-> $2 AS distance, l.created_at
		FROM latest l
		JOIN employees e ON e.id = l.employee_id
		WHERE e.is_active
		ORDER BY distance, l.employee_id
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, employeeID, profile, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SimilarEmployee
	for rows.Next() {
		var (
			s        domain.SimilarEmployee
			first    string
			last     string
			assessed time.Time
		)
		if err := rows.Scan(&s.EmployeeID, &first, &last, &s.Result, &s.TopTrait, &s.Distance, &assessed); err != nil {
			return nil, err
		}
		s.Name = domain.Employee{FirstName: first, LastName: last}.FullName()
		s.AssessedAt = assessed
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
