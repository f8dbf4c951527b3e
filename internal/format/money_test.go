package format

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0.0))
	assert.Equal(t, "$1,000,000.00", FormatCurrency(1000000.0))
	assert.Equal(t, "-$5.25", FormatCurrency(-5.25))
	assert.Equal(t, "$12.35", FormatCurrency(decimal.RequireFromString("12.345")))
}

func TestFormatCurrencyMissing(t *testing.T) {
	var amount *float64
	var dec *decimal.Decimal

	assert.Equal(t, "-", FormatCurrency(amount))
	assert.Equal(t, "-", FormatCurrency(dec))
	assert.Equal(t, "-", FormatCurrency(math.NaN()))
}

func TestFormatCurrencyPointer(t *testing.T) {
	amount := 99.9
	assert.Equal(t, "$99.90", FormatCurrency(&amount))
}
