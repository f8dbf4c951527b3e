package employee

import "context"

type StoreAPI interface {
	NextEmployeeNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	ManagerOf(ctx context.Context, id string) (string, error)
}
