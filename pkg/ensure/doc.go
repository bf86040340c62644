// Package ensure provides argument checks for function-call boundaries.
//
// The package is split into two parallel catalogues:
//
//   - Predicates (IsNull, IsNullOrEmpty, IsNullOrWhitespace, HasCorrectLength,
//     MatchesPattern, IsInRange) answer a yes/no question about a value.
//   - Error producers (WhenNull, WhenNullOrEmpty, WhenNullOrWhitespace,
//     WhenLengthIsIncorrect, WhenDoesNotMatchPattern, WhenOutOfRange) answer
//     the same question but return a descriptive *Error instead of false,
//     and nil when the value is acceptable.
//
// Producers compose by short-circuit: WhenNullOrWhitespace reports a null
// value as NullArgument, an empty value as "must not be empty", and only then
// a blank value as "must not be whitespace".
//
// String checks accept any Text: a string (never null) or a *string (null
// when nil). Lengths count code points after NFC normalization, and the
// length of null is always 0.
//
// # Raising
//
// Go code normally returns a producer's result directly:
//
//	if err := ensure.WhenNullOrWhitespace(name, "name"); err != nil {
//	    return err
//	}
//
// For preconditions that indicate a programming error, the Must* variants
// panic with the produced error and return the value otherwise:
//
//	name = ensure.MustNotBeNullOrWhitespace(name, "name")
//
// Collect runs several producers and aggregates every failure into
// ValidationErrors, and Any reports whether any of them failed.
//
// # Errors
//
// Every *Error carries a Kind matched by the sentinels ErrNullArgument,
// ErrOutOfRange and ErrInvalidArgument through errors.Is, the parameter
// name, the offending value where known, and a translation key with
// values for localized rendering.
//
// The package holds no state and is safe for concurrent use.
package ensure
