package attendance

import "context"

type StoreAPI interface {
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, int, error)
}
