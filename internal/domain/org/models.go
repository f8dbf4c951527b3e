package org

import "time"

type Department struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ManagerID     string    `json:"managerId,omitempty"`
	EmployeeCount int       `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateDepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"managerId,omitempty"`
}

type DashboardStats struct {
	TotalEmployees        int     `json:"totalEmployees"`
	ActiveEmployees       int     `json:"activeEmployees"`
	NewEmployeesThisMonth int     `json:"newEmployeesThisMonth"`
	EmployeesOnLeave      int     `json:"employeesOnLeave"`
	TotalDepartments      int     `json:"totalDepartments"`
	AttendanceRate        float64 `json:"attendanceRate"`
	PendingLeaveRequests  int     `json:"pendingLeaveRequests"`
}

type ActivityType string

const (
	ActivityEmployeeAdded    ActivityType = "EMPLOYEE_ADDED"
	ActivityEmployeeUpdated  ActivityType = "EMPLOYEE_UPDATED"
	ActivityLeaveApproved    ActivityType = "LEAVE_APPROVED"
	ActivityLeaveRejected    ActivityType = "LEAVE_REJECTED"
	ActivityAttendanceMarked ActivityType = "ATTENDANCE_MARKED"
	ActivitySalaryProcessed  ActivityType = "SALARY_PROCESSED"
)

var ActivityTypes = []ActivityType{
	ActivityEmployeeAdded,
	ActivityEmployeeUpdated,
	ActivityLeaveApproved,
	ActivityLeaveRejected,
	ActivityAttendanceMarked,
	ActivitySalaryProcessed,
}

func (t ActivityType) Valid() bool {
	for _, candidate := range ActivityTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

// RecentActivity is one entry of the organisation activity feed.
type RecentActivity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	UserID      string       `json:"userId"`
	UserName    string       `json:"userName"`
	CreatedAt   time.Time    `json:"createdAt"`
}
