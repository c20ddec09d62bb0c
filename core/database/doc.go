// Package database handles the optional MySQL connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. The connection is
// only opened when database.enabled is set; it backs the sync journal.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Database connection failed, journal disabled", zap.Error(err))
//	}
package database
