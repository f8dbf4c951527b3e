package leave

import (
	"strings"
	"time"

	"hrms/internal/platform/validate"
)

// CalculateDays returns the inclusive calendar day count between start and
// end. Only the calendar dates matter, not the times of day.
func CalculateDays(start, end time.Time) (int, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if endDay.Before(startDay) {
		return 0, ErrInvalidRange
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1, nil
}

var transitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Leave validates the input and builds a PENDING leave for employeeID.
func (in RequestInput) Leave(employeeID string) (Leave, error) {
	v := validate.New()
	v.Required("employeeId", employeeID)
	v.Check(in.LeaveType.Valid(), "leaveType", "must be one of SICK, CASUAL, ANNUAL, MATERNITY, PATERNITY, BEREAVEMENT, UNPAID")
	start, _ := v.Date("startDate", in.StartDate)
	end, _ := v.Date("endDate", in.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	v.Required("reason", in.Reason)
	if err := v.Err(); err != nil {
		return Leave{}, err
	}

	days, err := CalculateDays(start, end)
	if err != nil {
		return Leave{}, err
	}
	return Leave{
		EmployeeID: employeeID,
		LeaveType:  in.LeaveType,
		StartDate:  dateOnly(start),
		EndDate:    dateOnly(end),
		TotalDays:  days,
		Reason:     strings.TrimSpace(in.Reason),
		Status:     StatusPending,
		Notes:      strings.TrimSpace(in.Notes),
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
