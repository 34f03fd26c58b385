package employees

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/dbx"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/google/uuid"
)

const (
	insertEmployee = `INSERT INTO employees (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)`

	listEmployees = `SELECT id, first_name, last_name, email FROM employees
		ORDER BY last_name, first_name, id
		OFFSET $1`

	listEmployeesLimit = `SELECT id, first_name, last_name, email FROM employees
		ORDER BY last_name, first_name, id
		OFFSET $1 LIMIT $2`

	countEmployees = `SELECT count(*) FROM employees`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, insertEmployee, e.ID, e.FirstName, e.LastName, e.Email); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]models.Employee, error) {
	if offset < 0 {
		offset = 0
	}

	query, args := listEmployees, []any{offset}
	if limit > 0 {
		query, args = listEmployeesLimit, []any{offset, limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countEmployees).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
