package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Valid() bool {
	for _, candidate := range Genders {
		if g == candidate {
			return true
		}
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
	EmploymentContract EmploymentType = "CONTRACT"
	EmploymentIntern   EmploymentType = "INTERN"
)

var EmploymentTypes = []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern}

func (t EmploymentType) Valid() bool {
	for _, candidate := range EmploymentTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusOnLeave    Status = "ON_LEAVE"
	StatusTerminated Status = "TERMINATED"
	StatusResigned   Status = "RESIGNED"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusOnLeave, StatusTerminated, StatusResigned}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// IsTerminal reports statuses that end payroll and attendance. Nothing stops
// an update from leaving them; other packages just refuse to act on them.
func (s Status) IsTerminal() bool {
	return s == StatusTerminated || s == StatusResigned
}

type Employee struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	DateOfBirth    time.Time       `json:"dateOfBirth"`
	Gender         Gender          `json:"gender"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	Department     string          `json:"department"`
	Designation    string          `json:"designation"`
	ManagerID      string          `json:"managerId,omitempty"`
	DateOfJoining  time.Time       `json:"dateOfJoining"`
	EmploymentType EmploymentType  `json:"employmentType"`
	Status         Status          `json:"status"`
	Salary         decimal.Decimal `json:"salary"`
	ProfileImage   string          `json:"profileImage,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ListFilter narrows List. Zero values mean "any".
type ListFilter struct {
	Department string
	Status     Status
	ManagerID  string
	Search     string
	SortKey    string
	SortDesc   bool
	Limit      int
	Offset     int
}
