// Package config loads the fips tool configuration.
//
// Values come from, in increasing priority: the `default` struct tags of each
// section, a .env file in the given directory, and the process environment.
// Nested keys map to upper-case environment names joined by underscores, so
// server.port is SERVER_PORT and storage.enabled is STORAGE_ENABLED.
//
// # Configuration Structure
//
//   - Server: dev server host, port, root and address reuse
//   - Log: zap level and encoding, console color mode
//   - SDK: SDK directory override and download timeout
//   - Storage: optional S3/MinIO archive cache
//   - Database: installation records (sqlite file or MySQL)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
