package leave

import "time"

type Type string

const (
	TypeSick        Type = "SICK"
	TypeCasual      Type = "CASUAL"
	TypeAnnual      Type = "ANNUAL"
	TypeMaternity   Type = "MATERNITY"
	TypePaternity   Type = "PATERNITY"
	TypeBereavement Type = "BEREAVEMENT"
	TypeUnpaid      Type = "UNPAID"
)

var Types = []Type{TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity, TypeBereavement, TypeUnpaid}

func (t Type) Valid() bool {
	for _, candidate := range Types {
		if t == candidate {
			return true
		}
	}
	return false
}

// Paid reports whether the type draws on a balance.
func (t Type) Paid() bool {
	return t.Valid() && t != TypeUnpaid
}

// DefaultEntitlements are the yearly days granted per paid type when an
// employee's balance is first opened.
var DefaultEntitlements = map[Type]int{
	TypeSick:        10,
	TypeCasual:      8,
	TypeAnnual:      20,
	TypeMaternity:   90,
	TypePaternity:   10,
	TypeBereavement: 5,
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Leave struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	LeaveType  Type       `json:"leaveType"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	TotalDays  int        `json:"totalDays"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Balance tracks one paid leave type for one employee.
type Balance struct {
	EmployeeID    string `json:"employeeId"`
	LeaveType     Type   `json:"leaveType"`
	TotalDays     int    `json:"totalDays"`
	UsedDays      int    `json:"usedDays"`
	RemainingDays int    `json:"remainingDays"`
}

func NewBalance(employeeID string, leaveType Type, total, used int) Balance {
	return Balance{
		EmployeeID:    employeeID,
		LeaveType:     leaveType,
		TotalDays:     total,
		UsedDays:      used,
		RemainingDays: total - used,
	}
}

// RequestInput is a leave application. EmployeeID is only honoured for
// callers allowed to file on behalf of others; everyone else files for
// themselves.
type RequestInput struct {
	EmployeeID string `json:"employeeId,omitempty"`
	LeaveType  Type   `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes,omitempty"`
}

// Decision is who acts on a pending request. EmployeeID is the approver's own
// employee record, if any.
type Decision struct {
	UserID     string
	EmployeeID string
	Notes      string
}

type ListFilter struct {
	EmployeeID string
	Status     Status
	LeaveType  Type
	SortKey    string
	SortDesc   bool
	Limit      int
	Offset     int
}
