package org

import (
	"context"
	"time"
)

type StoreAPI interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, dept Department) (Department, error)
	RecountEmployees(ctx context.Context) (int, error)
	RecordActivity(ctx context.Context, activity RecentActivity) error
	RecentActivity(ctx context.Context, limit int) ([]RecentActivity, error)
	DashboardStats(ctx context.Context, now time.Time) (DashboardStats, error)
}
