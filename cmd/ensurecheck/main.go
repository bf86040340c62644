// Command ensurecheck validates field=value pairs against a YAML rule set.
//
// Usage:
//
//	ENSURE_RULES=rules.yaml ensurecheck username=bob starts_at=2024-05-01T10:00:00Z
//	ensurecheck --rules rules.yaml --json < values.txt
//
// Each argument, or each line of standard input when no arguments are given,
// is a field name optionally followed by "=" and a value. A field without
// "=" is checked as a null value. The command exits non-zero when any field
// fails its rule.
//
// Environment:
//
//	ENSURE_RULES  path to the rule set (overridden by --rules)
//	LOG_LEVEL     debug, info, warn or error (default info)
//	LOG_FORMAT    json or text (default depends on APP_ENV)
//	APP_ENV       development or production (default development)
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
