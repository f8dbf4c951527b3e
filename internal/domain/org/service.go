package org

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hrms/internal/platform/validate"
)

// DefaultActivityLimit is the feed length when the caller asks for none.
const DefaultActivityLimit = 10

const maxActivityLimit = 100

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Departments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (Department, error) {
	v := validate.New()
	v.Required("name", input.Name)
	if err := v.Err(); err != nil {
		return Department{}, err
	}
	return s.store.CreateDepartment(ctx, Department{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ManagerID:   strings.TrimSpace(input.ManagerID),
	})
}

// RecountHeadcount refreshes Department.EmployeeCount for all departments.
func (s *Service) RecountHeadcount(ctx context.Context) (int, error) {
	changed, err := s.store.RecountEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("recount headcount: %w", err)
	}
	return changed, nil
}

// Record appends to the activity feed. Failures are logged, not returned: the
// feed never blocks the mutation it describes.
func (s *Service) Record(ctx context.Context, activityType ActivityType, description, userID, userName string) {
	if !activityType.Valid() {
		slog.Warn("activity dropped", "type", activityType, "err", ErrInvalidActivity)
		return
	}
	err := s.store.RecordActivity(ctx, RecentActivity{
		Type:        activityType,
		Description: description,
		UserID:      userID,
		UserName:    userName,
	})
	if err != nil {
		slog.Warn("activity record failed", "type", activityType, "err", err)
	}
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]RecentActivity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.store.RecentActivity(ctx, limit)
}

func (s *Service) Stats(ctx context.Context) (DashboardStats, error) {
	return s.store.DashboardStats(ctx, s.now())
}
