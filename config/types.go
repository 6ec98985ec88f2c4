package config

// ServerConfig contains the health/monitoring server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// VehicleConfig identifies the vehicle and carries optional per-sensor
// offset overrides, keyed sensor → axis → value. Absent values fall back to
// the packaged defaults for the vehicle type; a present value always wins.
type VehicleConfig struct {
	Name    string                        `yaml:"name" validate:"required"`
	Type    string                        `yaml:"type" validate:"required,oneof=mk1 mk2"`
	Sensors map[string]map[string]float64 `yaml:"sensors"`
}

// LookupConfig bounds the wait inside transform lookups.
type LookupConfig struct {
	TimeoutMS int `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Vehicle VehicleConfig `yaml:"vehicle" validate:"required"`
	Lookup  LookupConfig  `yaml:"lookup"`
}
