/*
Package config loads and validates the calendar configuration.

PURPOSE:
  One YAML file describes a year: who the calendar is for, the leave
  policy, and the PTO event list. Defaults come from the struct, the
  file overrides the defaults, and PTOCAL_-prefixed environment
  variables override the file.

VALIDATION:
  Field-level rules run via struct tags (validator). Cross-field rules
  the tags cannot express (day-in-month for the configured year,
  duplicate event dates) surface through a dry-run event table build,
  so a bad config fails at load time instead of degrading silently.

EXAMPLE (ptocal.yaml):
  company: Initech
  employee: Ada
  year: 2024
  policy:
    vacation: 15
    vacation_accrual: true
    sick: 12
    extra_paycheck_months: [5, 11]
  events:
    - {month: 7, day: 4, type: h, days: 1, description: Independence Day}
    - {month: 7, day: 5, type: v, days: 0.5, description: Long weekend}
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"

	"github.com/warp/pto-calendar/balance"
	"github.com/warp/pto-calendar/calendar"
)

// Config is the full input for one year's calendar.
type Config struct {
	Company  string `koanf:"company" validate:"required"`
	Employee string `koanf:"employee" validate:"required"`
	Year     int    `koanf:"year" validate:"required,gte=1583,lte=9999"`

	Policy balance.Policy `koanf:"policy"`
	Events []EventEntry   `koanf:"events" validate:"dive"`

	LogLevel string `koanf:"log_level"`
}

// EventEntry is one PTO event as written in the config file. Type is
// the short category code; unknown codes annotate the date without any
// color or balance effect.
type EventEntry struct {
	Month       int     `koanf:"month" validate:"gte=1,lte=12"`
	Day         int     `koanf:"day" validate:"gte=1,lte=31"`
	Type        string  `koanf:"type"`
	Days        float64 `koanf:"days"`
	Description string  `koanf:"description"`
}

// Load reads the configuration from defaults, then the YAML file at
// path (missing file is not an error), then PTOCAL_* environment
// variables, and validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		Year:     time.Now().Year(),
		LogLevel: "info",
	}, "koanf"), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "PTOCAL_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "PTOCAL_")), "_", ".")
			return key, value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field rules and the event list. The event check is a
// dry-run table build, which rejects impossible dates and duplicates
// for the configured year.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := calendar.BuildTable(c.Year, c.Records()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Records converts the configured events into raw calendar records.
func (c Config) Records() []calendar.Record {
	records := make([]calendar.Record, len(c.Events))
	for i, e := range c.Events {
		records[i] = calendar.Record{
			Month:       e.Month,
			Day:         e.Day,
			Code:        e.Type,
			Days:        e.Days,
			Description: e.Description,
		}
	}
	return records
}
