package employee

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hrms/internal/platform/validate"
)

var digit = regexp.MustCompile(`\d`)

// CreateEmployeeInput is the hire payload. Dates are ISO strings.
type CreateEmployeeInput struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	DateOfBirth    string          `json:"dateOfBirth"`
	Gender         Gender          `json:"gender"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	Department     string          `json:"department"`
	Designation    string          `json:"designation"`
	ManagerID      string          `json:"managerId,omitempty"`
	DateOfJoining  string          `json:"dateOfJoining"`
	EmploymentType EmploymentType  `json:"employmentType"`
	Salary         decimal.Decimal `json:"salary"`
}

// UpdateEmployeeInput is any subset of the creation fields plus a status.
// A nil field is left untouched; an empty ManagerID clears the manager.
type UpdateEmployeeInput struct {
	FirstName      *string          `json:"firstName,omitempty"`
	LastName       *string          `json:"lastName,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	DateOfBirth    *string          `json:"dateOfBirth,omitempty"`
	Gender         *Gender          `json:"gender,omitempty"`
	Address        *string          `json:"address,omitempty"`
	City           *string          `json:"city,omitempty"`
	State          *string          `json:"state,omitempty"`
	ZipCode        *string          `json:"zipCode,omitempty"`
	Department     *string          `json:"department,omitempty"`
	Designation    *string          `json:"designation,omitempty"`
	ManagerID      *string          `json:"managerId,omitempty"`
	DateOfJoining  *string          `json:"dateOfJoining,omitempty"`
	EmploymentType *EmploymentType  `json:"employmentType,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	Status         *Status          `json:"status,omitempty"`
}

func checkPhone(v *validate.Validator, phone string) {
	if len(digit.FindAllString(phone, -1)) < 10 {
		v.Add("phone", "must contain at least 10 digits")
	}
}

func checkSalary(v *validate.Validator, salary decimal.Decimal) {
	v.Check(!salary.IsNegative(), "salary", "must not be negative")
}

// Employee validates the input and builds a new ACTIVE employee. The
// employee number and persistence fields are filled by the store.
func (in CreateEmployeeInput) Employee() (Employee, error) {
	v := validate.New()
	v.Required("firstName", in.FirstName)
	v.Required("lastName", in.LastName)
	v.Email("email", in.Email)
	checkPhone(v, in.Phone)
	dob, _ := v.Date("dateOfBirth", in.DateOfBirth)
	joined, _ := v.Date("dateOfJoining", in.DateOfJoining)
	v.Check(in.Gender.Valid(), "gender", "must be one of MALE, FEMALE, OTHER")
	v.Check(in.EmploymentType.Valid(), "employmentType", "must be one of FULL_TIME, PART_TIME, CONTRACT, INTERN")
	v.Required("department", in.Department)
	v.Required("designation", in.Designation)
	checkSalary(v, in.Salary)
	if !dob.IsZero() && !joined.IsZero() {
		v.Check(dob.Before(joined), "dateOfBirth", "must be before dateOfJoining")
	}
	if err := v.Err(); err != nil {
		return Employee{}, err
	}

	return Employee{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          strings.TrimSpace(in.Phone),
		DateOfBirth:    dob,
		Gender:         in.Gender,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		Department:     strings.TrimSpace(in.Department),
		Designation:    strings.TrimSpace(in.Designation),
		ManagerID:      strings.TrimSpace(in.ManagerID),
		DateOfJoining:  joined,
		EmploymentType: in.EmploymentType,
		Status:         StatusActive,
		Salary:         in.Salary,
	}, nil
}

// Apply validates the present fields and merges them into emp. emp is left
// unchanged when validation fails.
func (in UpdateEmployeeInput) Apply(emp *Employee) error {
	v := validate.New()
	next := *emp

	if in.FirstName != nil {
		v.Required("firstName", *in.FirstName)
		next.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		v.Required("lastName", *in.LastName)
		next.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		v.Email("email", *in.Email)
		next.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		checkPhone(v, *in.Phone)
		next.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.DateOfBirth != nil {
		if dob, ok := v.Date("dateOfBirth", *in.DateOfBirth); ok {
			next.DateOfBirth = dob
		}
	}
	if in.Gender != nil {
		v.Check(in.Gender.Valid(), "gender", "must be one of MALE, FEMALE, OTHER")
		next.Gender = *in.Gender
	}
	if in.Address != nil {
		next.Address = *in.Address
	}
	if in.City != nil {
		next.City = *in.City
	}
	if in.State != nil {
		next.State = *in.State
	}
	if in.ZipCode != nil {
		next.ZipCode = *in.ZipCode
	}
	if in.Department != nil {
		v.Required("department", *in.Department)
		next.Department = strings.TrimSpace(*in.Department)
	}
	if in.Designation != nil {
		v.Required("designation", *in.Designation)
		next.Designation = strings.TrimSpace(*in.Designation)
	}
	if in.ManagerID != nil {
		next.ManagerID = strings.TrimSpace(*in.ManagerID)
	}
	if in.DateOfJoining != nil {
		if joined, ok := v.Date("dateOfJoining", *in.DateOfJoining); ok {
			next.DateOfJoining = joined
		}
	}
	if in.EmploymentType != nil {
		v.Check(in.EmploymentType.Valid(), "employmentType", "must be one of FULL_TIME, PART_TIME, CONTRACT, INTERN")
		next.EmploymentType = *in.EmploymentType
	}
	if in.Salary != nil {
		checkSalary(v, *in.Salary)
		next.Salary = *in.Salary
	}
	if in.Status != nil {
		v.Check(in.Status.Valid(), "status", "must be one of ACTIVE, INACTIVE, ON_LEAVE, TERMINATED, RESIGNED")
		next.Status = *in.Status
	}
	if !next.DateOfBirth.IsZero() && !next.DateOfJoining.IsZero() {
		v.Check(next.DateOfBirth.Before(next.DateOfJoining), "dateOfBirth", "must be before dateOfJoining")
	}
	if err := v.Err(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now()
	*emp = next
	return nil
}

// Validate reports the field issues of the hire payload, if any.
func (in CreateEmployeeInput) Validate() error {
	_, err := in.Employee()
	return err
}

// Validate reports the field issues of the update payload without merging it.
func (in UpdateEmployeeInput) Validate() error {
	var scratch Employee
	return in.Apply(&scratch)
}
