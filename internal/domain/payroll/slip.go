package payroll

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"hrms/internal/domain/employee"
	"hrms/internal/format"
)

func NewSlip(s Salary, emp employee.Employee) SalarySlip {
	return SalarySlip{
		ID:          s.ID,
		Employee:    emp,
		Salary:      s,
		Month:       s.Month,
		Year:        s.Year,
		BasicSalary: s.BasicSalary,
		Allowances:  s.AllowanceBreakdown,
		Deductions:  s.DeductionBreakdown,
		GrossSalary: s.GrossSalary,
		NetSalary:   s.NetSalary,
	}
}

// Period is the slip's month as "March 2025".
func (slip SalarySlip) Period() string {
	return time.Month(slip.Month).String() + " " + fmt.Sprint(slip.Year)
}

type slipLine struct {
	label  string
	amount decimal.Decimal
}

// WritePDF renders the slip as a single A4 page.
func (slip SalarySlip) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary slip "+slip.Period(), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Salary Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	emp := slip.Employee
	for _, row := range [][2]string{
		{"Employee", emp.FullName() + " (" + emp.EmployeeID + ")"},
		{"Department", emp.Department + " / " + emp.Designation},
		{"Period", slip.Period()},
		{"Status", format.EnumLabel(string(slip.Salary.Status))},
		{"Payment date", format.FormatDate(slip.Salary.PaymentDate)},
		{"Payment method", paymentLabel(slip.Salary.PaymentMethod)},
	} {
		pdf.CellFormat(45, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	earnings := []slipLine{
		{"Basic salary", slip.BasicSalary},
		{"HRA", slip.Allowances.HRA},
		{"DA", slip.Allowances.DA},
		{"TA", slip.Allowances.TA},
		{"Other allowances", slip.Allowances.Other},
	}
	deductions := []slipLine{
		{"Provident fund", slip.Deductions.PF},
		{"Tax", slip.Deductions.Tax},
		{"Insurance", slip.Deductions.Insurance},
		{"Other deductions", slip.Deductions.Other},
	}
	writeSection(pdf, "Earnings", earnings, slipLine{"Gross salary", slip.GrossSalary})
	writeSection(pdf, "Deductions", deductions, slipLine{"Total deductions", slip.Deductions.Total()})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(130, 10, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, format.FormatCurrency(slip.NetSalary), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func writeSection(pdf *gofpdf.Fpdf, title string, lines []slipLine, total slipLine) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.CellFormat(130, 7, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, format.FormatCurrency(line.amount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 7, total.label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, format.FormatCurrency(total.amount), "", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func paymentLabel(m PaymentMethod) string {
	if m == "" {
		return format.Missing
	}
	return format.EnumLabel(string(m))
}
