package employee

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/platform/validate"
)

func validCreateInput() CreateEmployeeInput {
	return CreateEmployeeInput{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "Ada@Example.com",
		Phone:          "(555) 010-2030",
		DateOfBirth:    "1990-12-10",
		Gender:         GenderFemale,
		City:           "London",
		Department:     "Engineering",
		Designation:    "Engineer",
		DateOfJoining:  "2020-01-06",
		EmploymentType: EmploymentFullTime,
		Salary:         decimal.NewFromInt(95000),
	}
}

func TestCreateInputEmployee(t *testing.T) {
	emp, err := validCreateInput().Employee()
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", emp.Email)
	assert.Equal(t, StatusActive, emp.Status)
	assert.Equal(t, 1990, emp.DateOfBirth.Year())
	assert.Equal(t, 2020, emp.DateOfJoining.Year())
}

func TestCreateInputValidation(t *testing.T) {
	input := validCreateInput()
	input.FirstName = ""
	input.Email = "nope"
	input.Phone = "123"
	input.Gender = "X"
	input.DateOfJoining = "yesterday"
	input.Salary = decimal.NewFromInt(-1)

	_, err := input.Employee()
	require.Error(t, err)
	require.True(t, errors.Is(err, validate.ErrInvalid))

	fields := validate.Fields(err)
	for _, field := range []string{"firstName", "email", "phone", "gender", "dateOfJoining", "salary"} {
		assert.Contains(t, fields, field)
	}
}

func TestCreateInputBirthAfterJoining(t *testing.T) {
	input := validCreateInput()
	input.DateOfBirth = "2021-01-01"

	_, err := input.Employee()
	assert.Contains(t, validate.Fields(err), "dateOfBirth")
}

func TestUpdateInputApply(t *testing.T) {
	emp, err := validCreateInput().Employee()
	require.NoError(t, err)

	designation := "Staff Engineer"
	status := StatusOnLeave
	salary := decimal.NewFromInt(120000)
	require.NoError(t, UpdateEmployeeInput{Designation: &designation, Status: &status, Salary: &salary}.Apply(&emp))

	assert.Equal(t, "Staff Engineer", emp.Designation)
	assert.Equal(t, StatusOnLeave, emp.Status)
	assert.True(t, emp.Salary.Equal(salary))
	assert.Equal(t, "Ada", emp.FirstName)
}

func TestUpdateInputRejectsAndKeepsOriginal(t *testing.T) {
	emp, err := validCreateInput().Employee()
	require.NoError(t, err)

	status := Status("FIRED")
	name := "Grace"
	err = UpdateEmployeeInput{FirstName: &name, Status: &status}.Apply(&emp)

	assert.Contains(t, validate.Fields(err), "status")
	assert.Equal(t, "Ada", emp.FirstName)
	assert.Equal(t, StatusActive, emp.Status)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusTerminated.IsTerminal())
	assert.True(t, StatusResigned.IsTerminal())
	assert.False(t, StatusOnLeave.IsTerminal())
}
