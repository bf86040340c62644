package ruleset

import "errors"

var (
	// ErrFailedToParseYAML is returned when the rule document is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse rule set YAML")

	// ErrInvalidRuleSet is returned when the document parses but describes unusable rules.
	ErrInvalidRuleSet = errors.New("invalid rule set")

	// ErrFailedToReadFile is returned when the rule file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read rule set file")
)
