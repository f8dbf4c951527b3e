package org

import (
	"context"
	"fmt"
	"math"
	"time"
)

func (s *Store) DashboardStats(ctx context.Context, now time.Time) (DashboardStats, error) {
	var stats DashboardStats
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE status = 'ACTIVE'),
           COUNT(1) FILTER (WHERE date_of_joining >= $1),
           COUNT(1) FILTER (WHERE status = 'ON_LEAVE')
    FROM employees
  `, monthStart).Scan(&stats.TotalEmployees, &stats.ActiveEmployees, &stats.NewEmployeesThisMonth, &stats.EmployeesOnLeave)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("employee counts: %w", err)
	}

	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM departments").Scan(&stats.TotalDepartments); err != nil {
		return DashboardStats{}, fmt.Errorf("department count: %w", err)
	}
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leaves WHERE status = 'PENDING'").Scan(&stats.PendingLeaveRequests); err != nil {
		return DashboardStats{}, fmt.Errorf("pending leave count: %w", err)
	}

	var attended int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(DISTINCT a.employee_id)
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id
    WHERE a.date = $1 AND e.status = 'ACTIVE'
      AND a.status IN ('PRESENT', 'LATE', 'ON_TIME', 'HALF_DAY')
  `, today).Scan(&attended); err != nil {
		return DashboardStats{}, fmt.Errorf("attendance count: %w", err)
	}
	stats.AttendanceRate = AttendanceRate(attended, stats.ActiveEmployees)
	return stats, nil
}

// AttendanceRate is the percentage of active employees who attended, rounded
// to one decimal. It is 0 when nobody is active.
func AttendanceRate(attended, active int) float64 {
	if active <= 0 {
		return 0
	}
	return math.Round(float64(attended)*1000/float64(active)) / 10
}
