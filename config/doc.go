// Package config loads the TOML configuration of the boukman CLI and sets up
// logrus logging from it, with file rotation through lumberjack.
package config
