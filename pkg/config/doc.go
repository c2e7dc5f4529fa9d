// Package config loads SDK configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load and LoadWithPrefix parse the environment into any struct annotated
//     with `env` tags. LoadWithPrefix prepends a fixed prefix to every key,
//     which is how the settings package reads `DOCS_INTEGRATION_SDK_*`.
//   - Parsed values are cached per (type, prefix) pair for the lifetime of
//     the process. ResetCache and ForceReload exist for tests.
//
// # Usage
//
//	type EnvConfig struct {
//	    DocumentServerURL string `env:"DOCUMENT_SERVER_URL"`
//	    JWTKey            string `env:"JWT_KEY"`
//	}
//
//	var cfg EnvConfig
//	if err := config.LoadWithPrefix("DOCS_INTEGRATION_SDK_", &cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Errors
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a requested .env file could not be read.
//   - ErrConfigNotLoaded – the value vanished from cache between parse and read.
//   - ErrNilPointer – nil pointer passed to a loader.
package config
