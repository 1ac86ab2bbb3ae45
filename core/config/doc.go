// Package config provides configuration management for the storage SDK tooling.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Client: storage service base URL, API key, timeout and TLS verification
//   - Server: stub server listen address, API key and fixture file
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Client.BaseURL)
package config
