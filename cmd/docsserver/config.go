package main

import (
	"log/slog"

	"github.com/dmitrymomot/docsdk/pkg/file"
	"github.com/dmitrymomot/docsdk/pkg/httpserver"
)

// Storage drivers.
const (
	storageLocal = "local"
	storageS3    = "s3"
)

// Settings stores.
const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type appConfig struct {
	Env           string     `env:"APP_ENV" envDefault:"development"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	PublicURL     string     `env:"PUBLIC_URL" envDefault:"http://localhost:8080"` // must be reachable by the document server
	StorageDriver string     `env:"STORAGE_DRIVER" envDefault:"local"`
	StorageDir    string     `env:"STORAGE_DIR" envDefault:"./data"`
	SettingsStore string     `env:"SETTINGS_STORE" envDefault:"memory"`
	FormatsPath   string     `env:"FORMATS_PATH"`

	HTTP httpserver.Config
	S3   file.S3Config
}
