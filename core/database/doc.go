// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local development
// and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns reads the live schema so the integrity
// feature can verify that the monument tables carry the columns the snapshot
// loader relies on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
