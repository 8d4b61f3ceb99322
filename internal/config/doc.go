// Package config defines the application configuration structures and
// loading logic. Configuration comes from environment variables and an
// optional YAML file, validated at startup; the scheduling parameters it
// carries are converted to an immutable srs.Params and injected into the
// engine rather than read as globals.
package config
