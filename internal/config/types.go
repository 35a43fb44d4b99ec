package config

// SLConfig configures the SL station-search and trip-planner APIs.
type SLConfig struct {
	BaseURL           string  `yaml:"baseURL" validate:"omitempty,url"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	TimeoutMS         int     `yaml:"timeoutMS" validate:"gte=0"`
}

type TripConfig struct {
	Timezone string `yaml:"timezone"`
	// MaxItineraries caps the itineraries per reply; 0 means the default of 3.
	MaxItineraries int `yaml:"maxItineraries" validate:"gte=0,lte=3"`
}

// ReminderConfig schedules the monthly time-report reminder.
type ReminderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Channel string `yaml:"channel" validate:"required_if=Enabled true"`
	At      string `yaml:"at" validate:"omitempty,datetime=15:04"`
}

type HolidayConfig struct {
	BaseURL string `yaml:"baseURL" validate:"omitempty,url"`
}

type SlackConfig struct {
	APIBaseURL string `yaml:"apiBaseURL" validate:"omitempty,url"`
}

// Part maps a message context to candidate texts.
type Part map[string][]string

type MessagesConfig struct {
	Beginning Part     `yaml:"beginning" validate:"required,dive,min=1"`
	Middle    Part     `yaml:"middle" validate:"required,dive,min=1"`
	End       Part     `yaml:"end" validate:"required,dive,min=1"`
	Authors   []string `yaml:"authors" validate:"omitempty,dive,required"`
}

// AppConfig is the root of config.yaml.
type AppConfig struct {
	SL       SLConfig       `yaml:"sl"`
	Trip     TripConfig     `yaml:"trip"`
	Reminder ReminderConfig `yaml:"reminder"`
	Holiday  HolidayConfig  `yaml:"holiday"`
	Slack    SlackConfig    `yaml:"slack"`
	Messages MessagesConfig `yaml:"messages"`
}
