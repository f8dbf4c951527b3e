package employee

import (
	"time"

	"hrms/internal/format"
)

// Profile is the display rendering of an employee.
type Profile struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employeeId"`
	FullName          string `json:"fullName"`
	Slug              string `json:"slug"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DateOfBirth       string `json:"dateOfBirth"`
	Age               int    `json:"age"`
	Department        string `json:"department"`
	Designation       string `json:"designation"`
	DateOfJoining     string `json:"dateOfJoining"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	EmploymentType    string `json:"employmentType"`
	Status            string `json:"status"`
	Salary            string `json:"salary,omitempty"`
	Location          string `json:"location"`
}

// NewProfile renders emp as seen at now. Salary is only included when
// withSalary is set.
func NewProfile(emp Employee, now time.Time, withSalary bool) Profile {
	p := Profile{
		ID:                emp.ID,
		EmployeeID:        emp.EmployeeID,
		FullName:          emp.FullName(),
		Slug:              format.Slugify(emp.FullName() + " " + emp.EmployeeID),
		Email:             emp.Email,
		Phone:             format.FormatPhoneNumber(emp.Phone),
		DateOfBirth:       format.FormatDate(emp.DateOfBirth),
		Age:               format.AgeAt(emp.DateOfBirth, now),
		Department:        emp.Department,
		Designation:       emp.Designation,
		DateOfJoining:     format.FormatDate(emp.DateOfJoining),
		YearsOfExperience: format.YearsOfExperienceAt(emp.DateOfJoining, now),
		EmploymentType:    format.EnumLabel(string(emp.EmploymentType)),
		Status:            format.EnumLabel(string(emp.Status)),
		Location:          location(emp),
	}
	if withSalary {
		p.Salary = format.FormatCurrency(emp.Salary)
	}
	return p
}

func location(emp Employee) string {
	out := emp.City
	if emp.State != "" {
		if out != "" {
			out += ", "
		}
		out += emp.State
	}
	if emp.ZipCode != "" {
		if out != "" {
			out += " "
		}
		out += emp.ZipCode
	}
	if out == "" {
		return format.Missing
	}
	return out
}
