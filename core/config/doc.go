// Package config provides configuration management for the monument catalog.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials, media bucket and public URL
//   - Log: Logging level and format
//   - Review: visible changed rows, expanded-by-default and snapshot cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Review.VisibleChanges)
package config
