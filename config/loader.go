package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the configuration leaves a value unset.
const (
	DefaultServerPort      = 17771
	DefaultLookupTimeoutMS = 1000
)

// LoadAppConfig loads and validates the application configuration from the
// first readable path. With no arguments it tries config.yml in the working
// directory and under ./config/.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return ApplyDefaults(cfg), nil
}

// Validate checks the structural constraints declared on the config types.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Vehicle); err != nil {
		return err
	}
	return v.Struct(cfg.Lookup)
}

// ApplyDefaults fills unset values.
func ApplyDefaults(cfg AppConfig) AppConfig {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Lookup.TimeoutMS == 0 {
		cfg.Lookup.TimeoutMS = DefaultLookupTimeoutMS
	}
	return cfg
}
