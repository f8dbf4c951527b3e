package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount lists the shapes a money value can arrive in. Nil pointers are missing.
type Amount interface {
	float64 | *float64 | decimal.Decimal | *decimal.Decimal
}

// FormatCurrency renders amount as en-US dollars, e.g. "$1,234.50" or "-$5.00".
func FormatCurrency[T Amount](amount T) string {
	value, ok := toDecimal(amount)
	if !ok {
		return Missing
	}
	value = value.Round(2)
	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}
	printer := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + printer.Sprint(number.Decimal(value.InexactFloat64(), number.Scale(2)))
}

func toDecimal[T Amount](amount T) (decimal.Decimal, bool) {
	switch v := any(amount).(type) {
	case float64:
		return fromFloat(v)
	case *float64:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return fromFloat(*v)
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	}
	return decimal.Decimal{}, false
}

func fromFloat(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v), true
}
