package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hepi-staff/internal/domain"
)

type EmployeeRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (domain.Employee, error)
	GetByID(ctx context.Context, id string) (domain.Employee, error)
}

type PgEmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewPgEmployeeRepository(pool *pgxpool.Pool) *PgEmployeeRepository {
	return &PgEmployeeRepository{pool: pool}
}

const employeeColumns = `id, account_id, first_name, last_name, city, is_active, belbin_test_result, created_at, updated_at`

func (r *PgEmployeeRepository) GetByAccountID(ctx context.Context, accountID string) (domain.Employee, error) {
	return r.scanOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE account_id = $1`, accountID)
}

func (r *PgEmployeeRepository) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	return r.scanOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *PgEmployeeRepository) scanOne(ctx context.Context, query, arg string) (domain.Employee, error) {
	var e domain.Employee
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&e.ID,
		&e.AccountID,
		&e.FirstName,
		&e.LastName,
		&e.City,
		&e.IsActive,
		&e.BelbinTestResult,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Employee{}, err
	}
	return e, err
}
