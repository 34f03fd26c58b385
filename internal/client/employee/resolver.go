// Package employee is the lazily loaded employee feature module: a resolver
// that fetches the directory before navigation and a component that prints
// it.
package employee

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/client/router"
	"github.com/dmitrijs2005/staffview/internal/client/services"
)

// DataKey is the route data key the employee list is resolved under.
const DataKey = "employees"

// EmployeesResolver fetches one page of employees. The page and size come
// from the route query when present.
type EmployeesResolver struct {
	svc services.EmployeeService
}

func NewEmployeesResolver(svc services.EmployeeService) *EmployeesResolver {
	return &EmployeesResolver{svc: svc}
}

// Resolve always yields a non-nil []models.Employee on success.
func (r *EmployeesResolver) Resolve(ctx context.Context, snap *router.Snapshot) (any, error) {
	list, err := r.svc.GetEmployees(ctx, pageFrom(snap))
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return []models.Employee{}, nil
	}
	return list.Items, nil
}

func pageFrom(snap *router.Snapshot) models.Page {
	var p models.Page
	if n, err := strconv.Atoi(snap.QueryValue("page")); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(snap.QueryValue("size")); err == nil && n > 0 {
		p.Size = n
	}
	return p
}
