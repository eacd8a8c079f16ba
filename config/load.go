package config

import (
	"fmt"
	"log/slog"
	"strconv"
)

const (
	envEndpoint           = "STORAGE_ENDPOINT"
	envUseSSL             = "STORAGE_USE_SSL"
	envLocation           = "STORAGE_LOCATION"
	envDefaultBucket      = "STORAGE_DEFAULT_BUCKET"
	envCredentialsFile    = "STORAGE_CREDENTIALS_FILE"
	envCredentialsProfile = "STORAGE_CREDENTIALS_PROFILE"
)

const (
	DefaultEndpoint           = "storage.googleapis.com"
	DefaultLocation           = "auto"
	DefaultBucket             = "citizensciencewater.appspot.com"
	DefaultCredentialsFile    = "storage-reader-credentials"
	DefaultCredentialsProfile = "default"
)

var storageKeys = []string{
	envEndpoint,
	envUseSSL,
	envLocation,
	envDefaultBucket,
	envCredentialsFile,
	envCredentialsProfile,
}

func (c *StorageConfig) Load(envMap map[string]string) error {
	c.Endpoint = lookup(envMap, envEndpoint, DefaultEndpoint)
	c.Location = lookup(envMap, envLocation, DefaultLocation)
	c.DefaultBucket = lookup(envMap, envDefaultBucket, DefaultBucket)
	c.CredentialsFile = lookup(envMap, envCredentialsFile, DefaultCredentialsFile)
	c.CredentialsProfile = lookup(envMap, envCredentialsProfile, DefaultCredentialsProfile)

	useSSLStr, ok := envMap[envUseSSL]
	if !ok || useSSLStr == "" {
		c.UseSSL = true
		return nil
	}

	useSSL, err := strconv.ParseBool(useSSLStr)
	if err != nil {
		return fmt.Errorf("%s must be a boolean, got %q: %w", envUseSSL, useSSLStr, err)
	}
	c.UseSSL = useSSL

	return nil
}

func lookup(envMap map[string]string, key, fallback string) string {
	v, ok := envMap[key]
	if !ok || v == "" {
		slog.Debug("variable not set, using default", "variable", key, "default", fallback)
		return fallback
	}
	return v
}
