package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimezone   = "Europe/Stockholm"
	DefaultReminderAt = "09:00"

	generalContext = "general"
)

// Load reads, validates and defaults the YAML configuration at path.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	for name, part := range map[string]Part{
		"beginning": cfg.Messages.Beginning,
		"middle":    cfg.Messages.Middle,
		"end":       cfg.Messages.End,
	} {
		if len(part[generalContext]) == 0 {
			return nil, fmt.Errorf("validate: messages.%s needs a %q entry", name, generalContext)
		}
	}

	if cfg.Trip.Timezone == "" {
		cfg.Trip.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(cfg.Trip.Timezone); err != nil {
		return nil, fmt.Errorf("validate: trip.timezone: %w", err)
	}
	if cfg.Reminder.At == "" {
		cfg.Reminder.At = DefaultReminderAt
	}

	return &cfg, nil
}

// Location returns the reference time zone for trip times and reminders.
func (c *AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Trip.Timezone)
}

// ReminderTime returns the configured hour and minute.
func (c *AppConfig) ReminderTime() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.Reminder.At)
	if err != nil {
		return 0, 0, fmt.Errorf("reminder.at %q: %w", c.Reminder.At, err)
	}
	return t.Hour(), t.Minute(), nil
}

// SLTimeout converts the configured SL timeout; zero means the client default.
func (c *AppConfig) SLTimeout() time.Duration {
	return time.Duration(c.SL.TimeoutMS) * time.Millisecond
}
