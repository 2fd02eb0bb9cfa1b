// Package config loads and validates the invoicer configuration.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds everything the pipeline needs to run. Values come from the
// config file (.invoicer.yaml), environment (INVOICER_*), and flags, in
// ascending precedence.
type Config struct {
	// SubjectHas selects order mails: only messages whose subject contains
	// this substring are processed.
	SubjectHas string `mapstructure:"subject_has" yaml:"subject_has"`

	// TemplatePath is the invoice .docx template.
	TemplatePath string `mapstructure:"template_path" yaml:"template_path" validate:"required"`

	// OutputDir receives the generated invoices and error reports.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" validate:"required"`

	// CounterPath is the invoice sequence counter file.
	CounterPath string `mapstructure:"counter_path" yaml:"counter_path" validate:"required"`

	// InvoiceCountStart seeds the sequence when no counter file exists yet.
	InvoiceCountStart int `mapstructure:"invoice_count_start" yaml:"invoice_count_start" validate:"min=0"`

	// HomeCountry is the shop's own country. Addresses in it are truncated
	// to name, street and postal line; any other country line is translated
	// for the invoice.
	HomeCountry string `mapstructure:"home_country" yaml:"home_country" validate:"required"`

	// PollInterval is the sweep interval of the watch command.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval" validate:"min=1s"`
}

// SetDefaults registers the default values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("subject_has", "Neue Bestellung")
	v.SetDefault("output_dir", "docs")
	v.SetDefault("counter_path", ".last_invoice_count")
	v.SetDefault("invoice_count_start", 0)
	v.SetDefault("home_country", "Deutschland")
	v.SetDefault("poll_interval", time.Minute)
}

// Load materializes the configuration out of viper and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct's validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				return fmt.Errorf("config: field %s failed %q validation", e.Field(), e.Tag())
			}
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Example renders a commented starter configuration.
func Example() ([]byte, error) {
	return yaml.Marshal(Config{
		SubjectHas:        "Neue Bestellung",
		TemplatePath:      "template.docx",
		OutputDir:         "docs",
		CounterPath:       ".last_invoice_count",
		InvoiceCountStart: 0,
		HomeCountry:       "Deutschland",
		PollInterval:      time.Minute,
	})
}
