package payroll

import "context"

type StoreAPI interface {
	Create(ctx context.Context, s Salary) (Salary, error)
	Get(ctx context.Context, id string) (Salary, error)
	List(ctx context.Context, filter ListFilter) ([]Salary, int, error)
	// UpdateStatus writes s only while the stored status still equals from.
	UpdateStatus(ctx context.Context, s Salary, from Status) (Salary, error)
}
