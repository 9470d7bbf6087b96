// Package database handles the optional MySQL connection used for state persistence.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database. The connection is
// optional: when it fails, the application degrades to in-memory state (the feed
// cache and the seen-fingerprint store then do not survive restarts).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
