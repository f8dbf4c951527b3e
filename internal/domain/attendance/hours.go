package attendance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hrms/internal/platform/validate"
)

// DefaultStandardDay is the working day length beyond which time counts as
// overtime.
const DefaultStandardDay = 8 * time.Hour

// Hours derives working and overtime hours, both rounded to two decimals.
// Overtime is never negative. checkOut must not precede checkIn.
func Hours(checkIn, checkOut time.Time, standardDay time.Duration) (working, overtime float64) {
	worked := decimal.NewFromFloat(checkOut.Sub(checkIn).Hours()).Round(2)
	extra := worked.Sub(decimal.NewFromFloat(standardDay.Hours()))
	if extra.IsNegative() {
		extra = decimal.Zero
	}
	return worked.InexactFloat64(), extra.Round(2).InexactFloat64()
}

// Attendance validates the input and derives the hours when both check-in
// and check-out are given.
func (in MarkInput) Attendance(standardDay time.Duration) (Attendance, error) {
	v := validate.New()
	v.Required("employeeId", in.EmployeeID)
	date, _ := v.Date("date", in.Date)
	checkIn := v.OptionalDate("checkIn", in.CheckIn)
	checkOut := v.OptionalDate("checkOut", in.CheckOut)
	v.Check(in.Status.Valid(), "status", "must be one of PRESENT, ABSENT, LATE, ON_TIME, HALF_DAY, LEAVE")
	if checkIn != nil && checkOut != nil {
		v.DateOrder("checkIn", *checkIn, "checkOut", *checkOut)
	}
	if checkIn == nil && checkOut != nil {
		v.Add("checkIn", "is required when checkOut is set")
	}
	if err := v.Err(); err != nil {
		return Attendance{}, err
	}

	out := Attendance{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     in.Status,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if checkIn != nil && checkOut != nil {
		if standardDay <= 0 {
			standardDay = DefaultStandardDay
		}
		working, overtime := Hours(*checkIn, *checkOut, standardDay)
		out.WorkingHours = &working
		out.OvertimeHours = &overtime
	}
	return out, nil
}
