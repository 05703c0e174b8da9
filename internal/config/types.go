package config

import (
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "datepick.yaml"

// Config represents the datepick configuration document.
type Config struct {
	Format       string         `yaml:"format,omitempty" validate:"required,date_layout"`
	Placeholder  string         `yaml:"placeholder,omitempty" validate:"max=80"`
	MinDate      string         `yaml:"min_date,omitempty" validate:"omitempty,iso_date"`
	MaxDate      string         `yaml:"max_date,omitempty" validate:"omitempty,iso_date"`
	Theme        string         `yaml:"theme,omitempty" validate:"required,oneof=default light dark"`
	PageSiblings int            `yaml:"page_siblings,omitempty" validate:"min=0,max=5"`
	Log          LogSettings    `yaml:"log,omitempty"`
	Server       ServerSettings `yaml:"server,omitempty"`
}

// LogSettings configures the zerolog based logger.
type LogSettings struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// ServerSettings configures the HTML preview server.
type ServerSettings struct {
	Addr           string   `yaml:"addr,omitempty" validate:"required,listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" validate:"omitempty,dive,required"`
}

// Default returns the configuration used when no file is present. Parsed
// files are decoded on top of it, so omitted keys keep these values.
func Default() Config {
	return Config{
		Format:       calendar.DefaultLayout,
		Placeholder:  "Select date",
		Theme:        "default",
		PageSiblings: 1,
		Log: LogSettings{
			Level:         "info",
			HumanReadable: true,
		},
		Server: ServerSettings{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Bounds converts the configured min/max dates into calendar bounds. The
// config must already be valid.
func (c Config) Bounds() (calendar.Bounds, error) {
	var bounds calendar.Bounds
	if c.MinDate != "" {
		d, err := calendar.ParseISO(c.MinDate)
		if err != nil {
			return calendar.Bounds{}, err
		}
		bounds.Min = &d
	}
	if c.MaxDate != "" {
		d, err := calendar.ParseISO(c.MaxDate)
		if err != nil {
			return calendar.Bounds{}, err
		}
		bounds.Max = &d
	}
	return bounds, nil
}
