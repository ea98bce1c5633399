package services

import (
	"context"
	"fmt"
	"time"

	"teamcalendar/internal/domain"
)

type employeeService struct {
	employeeRepo   domain.EmployeeRepository
	contextTimeout time.Duration
}

func NewEmployeeService(employeeRepo domain.EmployeeRepository, timeout time.Duration) domain.EmployeeService {
	return &employeeService{
		employeeRepo:   employeeRepo,
		contextTimeout: timeout,
	}
}

func (s *employeeService) ListEmployees(ctx context.Context, includeDisabled bool) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	employees, err := s.employeeRepo.List(ctx, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if employees == nil {
		employees = []*domain.Employee{}
	}
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, employee *domain.Employee) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEmployee(employee); err != nil {
		return 0, err
	}
	employee.Disabled = false
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}
	return employee.ID, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(employee.ID); err != nil {
		return err
	}
	if err := validateEmployee(employee); err != nil {
		return err
	}
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return fmt.Errorf("update employee %d: %w", employee.ID, err)
	}
	return nil
}

func (s *employeeService) DisableEmployee(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(id); err != nil {
		return err
	}
	if err := s.employeeRepo.Disable(ctx, id); err != nil {
		return fmt.Errorf("disable employee %d: %w", id, err)
	}
	return nil
}

func validateEmployee(e *domain.Employee) error {
	if err := requireName("name", &e.Name); err != nil {
		return err
	}
	return requireColor("color", e.Color)
}
