// Package config provides the configuration loader for mexpd.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration by walking up from cwd looking for
// mexpd.yaml. A missing file is not an error: the service runs fine on
// defaults, configuration only adjusts the daemon's socket, timeout, log
// format and watched plugin directories.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, ok := l.findConfiguration(cwd)
	if !ok {
		return domain.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path discovered by walking up from cwd
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	return l.resolve(&file, filepath.Dir(path))
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// resolve fills defaults and normalizes paths relative to the config file.
func (l *Loader) resolve(file *File, baseDir string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Socket != "" {
		cfg.Socket = absolutize(file.Socket, baseDir)
	}

	if file.IdleTimeout != "" {
		timeout, err := time.ParseDuration(file.IdleTimeout)
		if err != nil {
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrConfigInvalid.Error()),
				"idleTimeout", file.IdleTimeout,
			)
		}
		cfg.IdleTimeout = timeout
	}

	switch file.LogFormat {
	case "":
	case string(domain.LogPretty):
		cfg.LogFormat = domain.LogPretty
	case string(domain.LogJSON):
		cfg.LogFormat = domain.LogJSON
	default:
		return nil, zerr.With(errors.Join(domain.ErrConfigInvalid, zerr.New("unknown logFormat")), "logFormat", file.LogFormat)
	}

	for _, dir := range file.PluginDirs {
		cfg.PluginDirs = append(cfg.PluginDirs, absolutize(dir, baseDir))
	}

	return cfg, nil
}

func absolutize(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
