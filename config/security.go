package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360/ephyscore/errors"
)

// Security limits applied to the defaults file.
const (
	maxConfigSize = 1 << 20 // 1MB max defaults file size
	maxPathLen    = 4096
)

// validateConfigPath rejects empty, overlong, path-traversing, or
// wrong-extension paths before the file is ever opened.
func validateConfigPath(path string) error {
	if path == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "validateConfigPath", "empty config path")
	}
	if len(path) > maxPathLen {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "validateConfigPath", fmt.Sprintf("path too long: %d > %d", len(path), maxPathLen))
	}

	cleaned := filepath.Clean(path)
	if _, err := filepath.Abs(cleaned); err != nil {
		return errors.WrapInvalid(err, "config", "validateConfigPath", "cannot resolve absolute path")
	}
	if strings.Contains(filepath.ToSlash(cleaned), "..") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "validateConfigPath", fmt.Sprintf("path traversal not allowed: %s", path))
	}

	if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "validateConfigPath", fmt.Sprintf("only YAML defaults files allowed: %s", path))
	}
	return nil
}

// safeReadFile reads a defaults file, applying the path/size/regular-
// file guards validateConfigPath and the stat check below enforce.
func safeReadFile(path string) ([]byte, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "safeReadFile", "cannot stat defaults file")
	}
	if info.Size() > maxConfigSize {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "config", "safeReadFile", fmt.Sprintf("defaults file too large: %d bytes > %d", info.Size(), maxConfigSize))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "config", "safeReadFile", fmt.Sprintf("not a regular file: %s", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "safeReadFile", "cannot read defaults file")
	}
	return data, nil
}
