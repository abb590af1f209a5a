package config

import (
	"os"
	"path/filepath"

	"scentshop/kvstore"
)

// InitStore opens the durable settings store under the data directory
func InitStore(cfg Config) (*kvstore.SQLite, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	return kvstore.OpenSQLite(filepath.Join(cfg.DataDir, "settings.db"))
}

// UploadsDir returns the attachment directory, creating it if needed
func UploadsDir(cfg Config) (string, error) {
	dir := filepath.Join(cfg.DataDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
