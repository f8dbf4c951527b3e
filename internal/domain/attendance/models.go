package attendance

import (
	"time"

	"hrms/internal/domain/employee"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusOnTime  Status = "ON_TIME"
	StatusHalfDay Status = "HALF_DAY"
	StatusLeave   Status = "LEAVE"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusOnTime, StatusHalfDay, StatusLeave}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Attended reports statuses that count towards the attendance rate.
func (s Status) Attended() bool {
	switch s {
	case StatusPresent, StatusLate, StatusOnTime, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is the record of one employee on one date.
type Attendance struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	Date          time.Time  `json:"date"`
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	Status        Status     `json:"status"`
	WorkingHours  *float64   `json:"workingHours,omitempty"`
	OvertimeHours *float64   `json:"overtimeHours,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Record is an Attendance joined with its employee, as listed to HR.
type Record struct {
	ID            string            `json:"id"`
	Employee      employee.Employee `json:"employee"`
	Date          time.Time         `json:"date"`
	CheckIn       *time.Time        `json:"checkIn,omitempty"`
	CheckOut      *time.Time        `json:"checkOut,omitempty"`
	Status        Status            `json:"status"`
	WorkingHours  *float64          `json:"workingHours,omitempty"`
	OvertimeHours *float64          `json:"overtimeHours,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

func NewRecord(a Attendance, emp employee.Employee) Record {
	return Record{
		ID:            a.ID,
		Employee:      emp,
		Date:          a.Date,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Status:        a.Status,
		WorkingHours:  a.WorkingHours,
		OvertimeHours: a.OvertimeHours,
		Notes:         a.Notes,
	}
}

type MarkInput struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Status     Status `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

// ListFilter narrows List. From and To are inclusive dates.
type ListFilter struct {
	EmployeeID string
	Status     Status
	From       *time.Time
	To         *time.Time
	SortKey    string
	SortDesc   bool
	Limit      int
	Offset     int
}
