// Package config provides configuration management for the migration
// validator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and the report bucket
//   - Log: Logging level and format
//   - Diff: Diff engine defaults (key column, format-checked columns)
//
// Defaults come from `default` struct tags; environment variables override
// them using underscore-joined keys (e.g. SERVER_PORT, DIFF_KEY_COLUMN).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Diff.KeyColumn)
package config
