package ensure

import (
	"reflect"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Text is satisfied by string-like values. A nil *string is the only null Text.
type Text interface {
	~string | *string
}

// textValue returns the string held by value and whether value is null.
func textValue[S Text](value S) (string, bool) {
	switch v := any(value).(type) {
	case string:
		return v, false
	case *string:
		if v == nil {
			return "", true
		}
		return *v, false
	default:
		return reflect.ValueOf(value).String(), false
	}
}

// Length returns the number of code points in value after NFC normalization.
// The length of a null value is 0.
func Length[S Text](value S) int {
	s, null := textValue(value)
	if null {
		return 0
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}
