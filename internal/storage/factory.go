package storage

import (
	"fmt"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/config"
)

// NewRecordStore selects a backend from config.
func NewRecordStore(cfg *config.Config, logger internal.Logger) (RecordStore, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileStore(cfg.RecordsFile, logger)
	case "postgres":
		return NewPostgresStore(cfg.PostgresDSN, logger)
	case "redis":
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
