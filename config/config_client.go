package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

type ClientConfig struct {
	Version Version    `mapstructure:"version"`
	Log     LogConfig  `mapstructure:"log"`
	WorkDir string     `mapstructure:"workdir"` // base directory command paths are resolved against
	Diff    DiffConfig `mapstructure:"diff"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // plain|json
}

type DiffConfig struct {
	ContextLines int `mapstructure:"context_lines"` // unchanged lines shown around a change
}

func (c *ClientConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Log),
		validation.Field(&c.Diff),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In(LogFormatPlain, LogFormatJSON)),
	)
}

func (d DiffConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ContextLines, validation.Min(0)),
	)
}
