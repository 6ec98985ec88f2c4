// Package config handles application configuration loading, validation and
// vehicle profile resolution.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Sensor mounting offsets resolve in two tiers: an explicit value in the
// live configuration always wins; otherwise the packaged per-vehicle-type
// default file (embedded under defaults/) is consulted at the same dotted
// path; if neither supplies the value, resolution fails before any sample
// processing can begin.
package config
