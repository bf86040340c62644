// Package config loads configuration structs from environment variables.
//
// Values come from the process environment, optionally seeded from .env
// files through github.com/joho/godotenv, and are parsed into tagged structs
// with github.com/caarlos0/env/v11:
//
//	type CheckConfig struct {
//	    Rules  string `env:"ENSURE_RULES,required"`
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CheckConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once per process and served from a cache
// afterwards. ResetCache clears it, which tests rely on after changing the
// environment.
package config
