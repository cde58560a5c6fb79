// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env struct tags.
// Validates credentials, interval bounds and the word pattern at startup;
// nothing past Load is allowed to fail on bad settings.
package config
