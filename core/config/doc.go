// Package config provides configuration management for the nursery monitor.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// config types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Feed: Upstream inventory feed (endpoint, sheet, cache TTL, poll interval)
//   - Database: MySQL connection details for persistent state
//   - Storage: S3/MinIO credentials and bucket settings for snapshot archiving
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
