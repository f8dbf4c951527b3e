package format

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	employeeIDPrefix = "EMP"
	base36Digits     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateEmployeeID returns EMP-<base36 millis>-<4 random base36 chars>.
// Two calls in the same millisecond share a timestamp and the suffix only has
// 36^4 values, so the result is not unique. Persisted employees get their
// number from the database sequence instead.
func GenerateEmployeeID() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	var suffix [4]byte
	for i := range suffix {
		suffix[i] = base36Digits[rand.Intn(len(base36Digits))]
	}
	return employeeIDPrefix + "-" + timestamp + "-" + string(suffix[:])
}
