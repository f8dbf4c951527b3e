package payroll

import "github.com/shopspring/decimal"

// Totals are the derived amounts of a salary, all rounded to cents.
type Totals struct {
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	Gross      decimal.Decimal
	Net        decimal.Decimal
}

// Compute derives gross = basic + allowances and net = gross - deductions.
func Compute(basic decimal.Decimal, allowances Allowances, deductions Deductions) Totals {
	allowanceTotal := allowances.Total().Round(2)
	deductionTotal := deductions.Total().Round(2)
	gross := basic.Round(2).Add(allowanceTotal)
	return Totals{
		Allowances: allowanceTotal,
		Deductions: deductionTotal,
		Gross:      gross,
		Net:        gross.Sub(deductionTotal),
	}
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusProcessed, StatusCancelled},
	StatusProcessed: {StatusPaid, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
