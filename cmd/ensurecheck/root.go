package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ensured/pkg/config"
	"github.com/dmitrymomot/ensured/pkg/ensure"
	"github.com/dmitrymomot/ensured/pkg/logger"
	"github.com/dmitrymomot/ensured/pkg/ruleset"
)

const serviceName = "ensurecheck"

// errChecksFailed is returned when at least one field failed its rule.
var errChecksFailed = errors.New("some fields failed validation")

type appConfig struct {
	Rules     string `env:"ENSURE_RULES"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
	Env       string `env:"APP_ENV" envDefault:"development"`
}

type options struct {
	rules    string
	json     bool
	envFiles []string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   serviceName + " [field=value ...]",
		Short: "Validate field values against a YAML rule set",
		Long: `ensurecheck applies the rules of a YAML rule set to field=value pairs
given as arguments, or read line by line from standard input.

A field without "=" is checked as a null value.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.rules, "rules", "", "rule set file (overrides ENSURE_RULES)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the report as JSON")
	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading configuration")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	if err := config.LoadEnv(opts.envFiles...); err != nil {
		return err
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if opts.rules != "" {
		cfg.Rules = opts.rules
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := ensure.WhenNullOrWhitespace(cfg.Rules, "rules"); err != nil {
		return fmt.Errorf("no rule set given, use --rules or ENSURE_RULES: %w", err)
	}
	set, err := ruleset.Load(cfg.Rules)
	if err != nil {
		ve := ensure.ExtractValidationErrors(err)
		for _, param := range ve.Fields() {
			log.Error("invalid rule", logger.Field(param), slog.Any("problems", ve.Get(param)))
		}
		return err
	}
	log.Debug("rule set loaded", slog.String("path", cfg.Rules), slog.Any("fields", set.Names()))

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	rep := evaluate(set, inputs, log)
	if opts.json {
		err = rep.writeJSON(cmd.OutOrStdout())
	} else {
		err = rep.writeText(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	if rep.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, rep.Failed, len(rep.Results))
	}
	return nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := ensure.WhenDoesNotMatchPattern(cfg.LogFormat, `^(json|text)?$`, "LOG_FORMAT"); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(w),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...), nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if ensure.IsNullOrWhitespace(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// parseInput splits "field=value". A missing "=" yields a nil value.
func parseInput(s string) (string, *string) {
	field, value, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok {
		return field, nil
	}
	return field, &value
}
