package config

import (
	"fmt"
	"log/slog"
	"strings"

	cenv "github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// LoadEnvConfig reads EnvConfig from the process environment.
// Struct defaults are applied first, then environment values, then validation.
func LoadEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set default values: %w", err)
	}
	if err := cenv.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	return cfg, nil
}

// Level returns the slog level for LogLevel, warn when unset.
func (c *EnvConfig) Level() slog.Level {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// ColorDisabled reports whether the environment asks for plain output.
func (c *EnvConfig) ColorDisabled() bool {
	return c.NoColor || c.NoColorConvention != "" || c.Term == "dumb"
}

// Language returns the language of the first non-empty locale variable
// (LC_ALL, LC_CTYPE, LANG). Unset, C, POSIX and unparsable locales
// give language.Und.
func (c *EnvConfig) Language() language.Tag {
	for _, v := range []string{c.LCAll, c.LCCtype, c.Lang} {
		if v != "" {
			return ParseLocale(v)
		}
	}
	return language.Und
}

// ParseLocale converts a POSIX locale name such as "tr_TR.UTF-8@euro"
// into a BCP 47 tag.
func ParseLocale(locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
