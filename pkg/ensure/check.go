package ensure

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"
)

// IsNull reports whether value is nil, including typed nil pointers, maps,
// slices, channels, funcs and interfaces.
func IsNull(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func IsNullOrEmpty[S Text](value S) bool {
	s, null := textValue(value)
	return null || s == ""
}

// IsNullOrWhitespace reports whether value is null, empty, or made only of Unicode white space.
func IsNullOrWhitespace[S Text](value S) bool {
	s, null := textValue(value)
	return null || strings.TrimSpace(s) == ""
}

// HasCorrectLength reports whether min <= Length(value) <= max.
// A negative min is rejected with an InvalidArgument error whatever the value.
// When max < min the check never passes.
func HasCorrectLength[S Text](value S, min, max int) (bool, error) {
	if min < 0 {
		return false, negativeMinimum(min)
	}
	n := Length(value)
	return n >= min && n <= max, nil
}

// MatchesPattern reports whether value contains a match of the regular expression pattern.
// A null value is rejected with an InvalidArgument error; a malformed pattern
// yields ErrInvalidPattern joined with the compile error.
func MatchesPattern[S Text](value S, pattern string) (bool, error) {
	s, null := textValue(value)
	if null {
		return false, InvalidArgument("value", nil, "Value cannot be null when matching a pattern.")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, errors.Join(ErrInvalidPattern, err)
	}
	return re.MatchString(s), nil
}

// IsInRange reports whether value is at or after min, both compared in UTC.
func IsInRange(value, min time.Time) bool {
	return !value.UTC().Before(min.UTC())
}

func negativeMinimum(min int) *Error {
	return InvalidArgument("min", min, "Value was out of range. Must be non-negative.").
		withTranslation("validation.min_non_negative", nil)
}
