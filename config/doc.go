// Package config loads the shared settings required by the cabreaich
// services from environment variables and an optional dotenv file. Settings
// are validated on load and secrets are redacted when printed or marshaled.
package config
