// Package ruleset evaluates named string fields against rules declared in YAML.
//
// A rule document lists fields in order:
//
//	fields:
//	  - name: username
//	    required: whitespace   # none | null | empty | whitespace
//	    min_length: 3
//	    max_length: 16
//	    pattern: "^[a-z0-9_]+$"
//	  - name: starts_at
//	    not_before: 2024-01-01T00:00:00Z
//
// Parse rejects documents whose rules could never be applied (duplicate
// names, negative lengths, malformed patterns) with ErrInvalidRuleSet joined
// with the ensure.ValidationErrors describing each problem.
//
// Evaluate returns an outcome.Outcome[string]: the value on success, or every
// violated check in rule order on failure.
package ruleset
