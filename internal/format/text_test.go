package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "(123) 456-7890", FormatPhoneNumber("1234567890"))
	assert.Equal(t, "(123) 456-7890", FormatPhoneNumber("123.456.7890"))
	assert.Equal(t, "123", FormatPhoneNumber("123"))
	assert.Equal(t, "+1 123 456 7890", FormatPhoneNumber("+1 123 456 7890"))
	assert.Equal(t, "call me", FormatPhoneNumber("call me"))
	assert.Equal(t, "-", FormatPhoneNumber(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello...", Truncate("hello world", 5))
	assert.Equal(t, "hi", Truncate("hi", 5))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello world", Capitalize("hELLO WORLD"))
	assert.Equal(t, "A", Capitalize("a"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Éclair", Capitalize("éCLAIR"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World!"))
	assert.Equal(t, "human-resources-team", Slugify("Human   Resources & Team"))
	assert.Equal(t, "payroll_2024", Slugify("Payroll_2024"))
}

func TestEnumLabel(t *testing.T) {
	assert.Equal(t, "Full time", EnumLabel("FULL_TIME"))
	assert.Equal(t, "Admin", EnumLabel("ADMIN"))
}
