package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

func (c *StorageConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%s must not be empty", envEndpoint)
	}

	if !isValidBucketName(c.DefaultBucket) {
		return fmt.Errorf("bucket name %q is invalid: use lowercase letters, digits, dots, dashes and underscores", c.DefaultBucket)
	}

	info, err := os.Stat(c.CredentialsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: copy the storage reader credentials into %s", ErrCredentialsNotFound, c.CredentialsFile)
	}
	if err != nil {
		return fmt.Errorf("failed to check credentials file %s: %w", c.CredentialsFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("credentials file %s is a directory", c.CredentialsFile)
	}

	return nil
}

var bucketNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._\-]{1,220}[a-z0-9]$`)

func isValidBucketName(bucketName string) bool {
	return bucketNameRegex.MatchString(bucketName)
}
