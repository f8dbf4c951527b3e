package leave

import "context"

type StoreAPI interface {
	// InTx runs fn against a store bound to one transaction.
	InTx(ctx context.Context, fn func(StoreAPI) error) error
	Create(ctx context.Context, l Leave) (Leave, error)
	Get(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context, filter ListFilter) ([]Leave, int, error)
	// Lock reads a leave and holds it until the transaction ends.
	Lock(ctx context.Context, id string) (Leave, error)
	UpdateStatus(ctx context.Context, l Leave) (Leave, error)
	Balances(ctx context.Context, employeeID string) ([]Balance, error)
	// LockBalance opens the balance with its default entitlement when missing
	// and holds it until the transaction ends.
	LockBalance(ctx context.Context, employeeID string, leaveType Type) (Balance, error)
	AddUsedDays(ctx context.Context, employeeID string, leaveType Type, days int) error
}
