package domain

import "context"

// Employee is a person that can take part in events. Disabled employees are hidden from the
// active listing but stay valid as participants of existing events.
// swagger:model Employee
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Disabled bool   `json:"disabled"`
}

// NewEmployee returns an enabled Employee. ID is set by the repository on create.
func NewEmployee(name, color string) *Employee {
	return &Employee{Name: name, Color: color}
}

// EmployeeRepository defines the interface for employee storage
type EmployeeRepository interface {
	List(ctx context.Context, includeDisabled bool) ([]*Employee, error)
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Disable(ctx context.Context, id int64) error
}

// EmployeeService defines the business logic for employees.
type EmployeeService interface {
	ListEmployees(ctx context.Context, includeDisabled bool) ([]*Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) (int64, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DisableEmployee(ctx context.Context, id int64) error
}
