package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/repomanager"
)

// EmployeePage is one page of the directory together with the total count.
type EmployeePage struct {
	Items []models.Employee
	Total int
}

type EmployeeService struct {
	repos repomanager.RepositoryManager
}

func NewEmployeeService(m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{repos: m}
}

// List returns page (1-based) of size employees. A size of zero returns
// the whole directory.
func (s *EmployeeService) List(ctx context.Context, page, size int) (EmployeePage, error) {
	if page < 1 || size < 0 {
		return EmployeePage{}, fmt.Errorf("%w: page must be >= 1 and size >= 0", common.ErrorValidation)
	}

	offset := 0
	if size > 0 {
		offset = (page - 1) * size
	}

	var out EmployeePage
	err := s.repos.ReadTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		items, err := r.Employees().List(ctx, offset, size)
		if err != nil {
			return err
		}
		total, err := r.Employees().Count(ctx)
		if err != nil {
			return err
		}
		out = EmployeePage{Items: items, Total: total}
		return nil
	})
	if err != nil {
		return EmployeePage{}, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}
