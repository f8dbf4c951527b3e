package employee

import (
	"context"
	"errors"
)

// maxChainDepth bounds the walk up the reporting chain.
const maxChainDepth = 64

// ManagerLookup returns the manager id of employeeID ("" for none), or
// ErrNotFound when the employee does not exist.
type ManagerLookup func(ctx context.Context, employeeID string) (string, error)

// CheckManager verifies that managerID exists and that making it the manager
// of employeeID keeps the reporting graph acyclic. employeeID is empty for a
// not yet persisted employee.
func CheckManager(ctx context.Context, employeeID, managerID string, lookup ManagerLookup) error {
	if managerID == "" {
		return nil
	}
	if managerID == employeeID {
		return ErrManagerCycle
	}

	seen := map[string]bool{}
	if employeeID != "" {
		seen[employeeID] = true
	}
	current := managerID
	for depth := 0; current != ""; depth++ {
		if seen[current] || depth >= maxChainDepth {
			return ErrManagerCycle
		}
		seen[current] = true

		next, err := lookup(ctx, current)
		if errors.Is(err, ErrNotFound) {
			if current == managerID {
				return ErrManagerNotFound
			}
			return nil
		}
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}
