package format

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var employeeIDShape = regexp.MustCompile(`^EMP-[0-9A-Z]+-[0-9A-Z]{4}$`)

func TestGenerateEmployeeIDShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		id := GenerateEmployeeID()
		assert.Regexp(t, employeeIDShape, id)
	}
}
