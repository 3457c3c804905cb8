// Package config provides configuration management for the blob store.
//
// It uses Viper to read environment variables (optionally seeded from a .env
// file). Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP gateway port, API key and body limit
//   - Storage: driver, endpoint, credentials and default bucket
//   - Log: logging level and format
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores, e.g. storage.access_key is STORAGE_ACCESS_KEY.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Driver)
package config
