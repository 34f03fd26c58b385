package services

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/client/api"
	"github.com/dmitrijs2005/staffview/internal/client/models"
)

// EmployeeService reads the employee directory.
type EmployeeService interface {
	GetEmployees(ctx context.Context, page models.Page) (models.EmployeeList, error)
}

type employeeService struct {
	client api.Client
}

func NewEmployeeService(client api.Client) EmployeeService {
	return &employeeService{client: client}
}

func (s *employeeService) GetEmployees(ctx context.Context, page models.Page) (models.EmployeeList, error) {
	return s.client.Employees(ctx, page)
}
