package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// ErrCredentialsNotFound is returned by Get when the storage credentials file
// is absent. Nothing in this module can talk to the bucket without it.
var ErrCredentialsNotFound = errors.New("storage credentials file not found")

type BasicConfig interface {
	Load(map[string]string) error
	Validate() error
}

type StorageConfig struct {
	Endpoint           string
	UseSSL             bool
	Location           string
	DefaultBucket      string
	CredentialsFile    string
	CredentialsProfile string
}

type Config struct {
	Storage StorageConfig
}

// readEnv merges the given env files (missing ones are skipped) with the
// process environment. Process variables win.
func readEnv(envFiles ...string) (map[string]string, error) {
	envMap := map[string]string{}

	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			slog.Debug("env file not found, skipping", "file", name)
			continue
		}

		fileEnv, err := godotenv.Read(name)
		if err != nil {
			slog.Error("failed to read env file", "file", name, "error", err)
			return nil, fmt.Errorf("failed to read env file %s: %w", name, err)
		}
		for k, v := range fileEnv {
			envMap[k] = v
		}
	}

	for _, key := range storageKeys {
		if v, ok := os.LookupEnv(key); ok {
			envMap[key] = v
		}
	}

	return envMap, nil
}

// Get loads the configuration from envFiles (".env" when none are given)
// and the process environment, then validates it.
func Get(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}

	envMap, err := readEnv(envFiles...)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	storageCfg := &StorageConfig{}

	configs := []BasicConfig{storageCfg}
	for _, cfg := range configs {
		if err := cfg.Load(envMap); err != nil {
			slog.Error("failed to load configuration", "error", err)
			return Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			slog.Error("configuration is invalid", "error", err)
			return Config{}, err
		}
	}

	slog.Debug("configuration loaded", "endpoint", storageCfg.Endpoint, "bucket", storageCfg.DefaultBucket)
	return Config{
		Storage: *storageCfg,
	}, nil
}
