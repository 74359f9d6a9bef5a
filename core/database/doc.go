// Package database opens the GORM connection used for SDK installation records.
//
// The default driver is sqlite, storing a single file next to the installed
// SDKs so a developer machine needs no server. Teams that share a build host
// can point the records at MySQL instead:
//
//	DATABASE_DRIVER=mysql DATABASE_HOST=db DATABASE_NAME=fips fips setup nacl
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("records unavailable: %w", err)
//	}
package database
