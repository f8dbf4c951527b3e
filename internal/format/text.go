package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	nonDigits   = regexp.MustCompile(`\D`)
	nonSlugRune = regexp.MustCompile(`[^\w ]+`)
	spaceRuns   = regexp.MustCompile(` +`)
)

// FormatPhoneNumber renders a ten digit number as "(123) 456-7890". Anything
// else is returned as given; this is a display helper, not a validator.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return Missing
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// Truncate cuts s to length runes and appends "...". The result may be up to
// three runes longer than length.
func Truncate(s string, length int) string {
	if length < 0 {
		length = 0
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length]) + "..."
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Slugify lower-cases s, drops everything but word characters and spaces,
// and joins the remaining words with hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugRune.ReplaceAllString(s, "")
	return spaceRuns.ReplaceAllString(s, "-")
}

// EnumLabel turns an enum value such as "FULL_TIME" into "Full time".
func EnumLabel(value string) string {
	return Capitalize(strings.ReplaceAll(value, "_", " "))
}
