package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/ensured/pkg/logger"
	"github.com/dmitrymomot/ensured/pkg/outcome"
	"github.com/dmitrymomot/ensured/pkg/ruleset"
)

type result struct {
	Field   string   `json:"field"`
	Value   *string  `json:"value"`
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

type report struct {
	Results  []result `json:"results"`
	Accepted []string `json:"accepted"`
	Failed   int      `json:"failed"`
}

func evaluate(set *ruleset.Set, inputs []string, log *slog.Logger) report {
	rep := report{
		Results:  make([]result, 0, len(inputs)),
		Accepted: []string{},
	}

	for _, in := range inputs {
		field, value := parseInput(in)
		res := set.Evaluate(field, value)

		r := result{Field: field, Value: value, Success: res.IsSuccess()}
		for _, err := range res.Errors() {
			r.Errors = append(r.Errors, err.Error())
		}
		rep.Results = append(rep.Results, r)

		// A null optional field passes but has no value to accept.
		if value == nil && res.IsSuccess() {
			log.Debug("field absent", logger.Field(field))
			continue
		}

		var err error
		if rep.Accepted, err = outcome.Append(rep.Accepted, res); err != nil {
			rep.Failed++
			log.Warn("field rejected", logger.Field(field), logger.Outcome(res))
			continue
		}
		log.Debug("field accepted", logger.Field(field))
	}
	return rep
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r report) writeText(w io.Writer) error {
	for _, res := range r.Results {
		var line string
		if res.Success {
			line = fmt.Sprintf("ok    %s\n", res.Field)
		} else {
			line = fmt.Sprintf("FAIL  %s: %s\n", res.Field, strings.Join(res.Errors, "; "))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d checked, %d failed\n", len(r.Results), r.Failed)
	return err
}
