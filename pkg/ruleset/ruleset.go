package ruleset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ensured/pkg/ensure"
	"github.com/dmitrymomot/ensured/pkg/outcome"
)

// Presence selects how strictly a field must be present.
type Presence string

const (
	PresenceNone       Presence = "none"
	PresenceNull       Presence = "null"
	PresenceEmpty      Presence = "empty"
	PresenceWhitespace Presence = "whitespace"
)

// Rule describes the checks applied to one field.
// Zero values disable a check, except MaxLength which is only applied
// when MinLength or MaxLength is set.
type Rule struct {
	Name      string     `yaml:"name"`
	Required  Presence   `yaml:"required"`
	MinLength *int       `yaml:"min_length"`
	MaxLength *int       `yaml:"max_length"`
	Pattern   string     `yaml:"pattern"`
	NotBefore *time.Time `yaml:"not_before"`
}

// Set is an ordered collection of field rules. Build it with Parse or Load.
type Set struct {
	Fields []Rule `yaml:"fields"`

	byName map[string]int
}

// Parse decodes and validates a YAML rule document.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := s.validate(); err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}
	return &s, nil
}

// Load reads and parses the rule document at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

func (s *Set) validate() error {
	if len(s.Fields) == 0 {
		return ensure.OutOfRange("fields", nil, "Value was out of range. At least one field rule is required.")
	}

	s.byName = make(map[string]int, len(s.Fields))
	var errs []error
	for i := range s.Fields {
		r := &s.Fields[i]
		param := fmt.Sprintf("fields[%d]", i)

		if err := ensure.WhenNullOrWhitespace(r.Name, param+".name"); err != nil {
			errs = append(errs, err)
		} else if _, dup := s.byName[r.Name]; dup {
			errs = append(errs, ensure.InvalidArgument(param+".name", r.Name, "Duplicate field name."))
		} else {
			s.byName[r.Name] = i
		}

		switch r.Required {
		case "":
			r.Required = PresenceNone
		case PresenceNone, PresenceNull, PresenceEmpty, PresenceWhitespace:
		default:
			errs = append(errs, ensure.OutOfRange(param+".required", string(r.Required),
				"Value was out of range. Must be one of none, null, empty, whitespace."))
		}

		if r.MinLength != nil && *r.MinLength < 0 {
			errs = append(errs, ensure.InvalidArgument(param+".min_length", *r.MinLength, "Value was out of range. Must be non-negative."))
		}
		if r.MinLength != nil && r.MaxLength != nil && *r.MaxLength < *r.MinLength {
			errs = append(errs, ensure.OutOfRange(param+".max_length", *r.MaxLength,
				fmt.Sprintf("Value was out of range. Must be at least min_length %d.", *r.MinLength)))
		}

		if r.Pattern != "" {
			if _, err := ensure.MatchesPattern("", r.Pattern); err != nil {
				errs = append(errs, ensure.InvalidArgument(param+".pattern", r.Pattern, err.Error()).WithCause(err))
			}
		}
	}
	return ensure.Collect(errs...)
}

// Names returns the field names in declaration order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, r := range s.Fields {
		names = append(names, r.Name)
	}
	return names
}

// Rule returns the rule for field.
func (s *Set) Rule(field string) (Rule, bool) {
	i, ok := s.byName[field]
	if !ok {
		return Rule{}, false
	}
	return s.Fields[i], true
}

// Evaluate applies the rule for field to value. A nil value is null.
//
// Presence is checked first and stops evaluation when it fails. Length,
// pattern and date checks are then all applied and every failure is
// recorded, in that order. A successful outcome carries the value.
func (s *Set) Evaluate(field string, value *string) *outcome.Outcome[string] {
	r, ok := s.Rule(field)
	if !ok {
		return outcome.FailureMessageOf[string](fmt.Sprintf("no rule for field %q", field))
	}

	if err := r.presence(value); err != nil {
		return outcome.FailureOf[string](err)
	}
	if value == nil {
		return outcome.SuccessOf[string]()
	}

	var errs []error
	if r.MinLength != nil || r.MaxLength != nil {
		errs = append(errs, r.length(value, field))
	}
	if r.Pattern != "" {
		errs = append(errs, ensure.WhenDoesNotMatchPattern(value, r.Pattern, field))
	}
	if r.NotBefore != nil {
		errs = append(errs, r.notBefore(*value, field))
	}

	if ensure.Any(errs...) {
		return outcome.FailureOf[string](nil, errs...)
	}
	return outcome.SuccessWith(*value)
}

func (r Rule) presence(value *string) error {
	switch r.Required {
	case PresenceNull:
		return ensure.WhenNull(value, r.Name)
	case PresenceEmpty:
		return ensure.WhenNullOrEmpty(value, r.Name)
	case PresenceWhitespace:
		return ensure.WhenNullOrWhitespace(value, r.Name)
	}
	return nil
}

// length checks the length bounds. Without max_length only the lower bound
// applies and is reported as such.
func (r Rule) length(value *string, field string) error {
	minLen := 0
	if r.MinLength != nil {
		minLen = *r.MinLength
	}
	if r.MaxLength != nil {
		return ensure.WhenLengthIsIncorrect(value, minLen, *r.MaxLength, field)
	}

	ok, err := ensure.HasCorrectLength(value, minLen, math.MaxInt)
	if err != nil || ok {
		return err
	}
	e := ensure.OutOfRange(field, *value, fmt.Sprintf("Value was out of range. The length must be at least %d.", minLen))
	e.TranslationKey = "validation.length_min"
	e.TranslationValues["min"] = minLen
	return e
}

func (r Rule) notBefore(value, field string) error {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ensure.OutOfRange(field, value, "Value was out of range. Must be an RFC 3339 timestamp.")
	}
	return ensure.WhenOutOfRange(t, *r.NotBefore, field)
}
