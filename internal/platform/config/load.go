package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	fs        afero.Fs
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithFS reads the YAML layers from fs instead of the OS filesystem. The
// tsvalidate CLI and tests use it to keep config next to the files they
// validate.
func WithFS(fs afero.Fs) Option {
	return func(o *loadOptions) { o.fs = fs }
}

// source returns the koanf provider for one YAML layer.
func (o *loadOptions) source(path string) koanf.Provider {
	if o.fs == nil {
		return file.Provider(path)
	}
	return aferoFile{fs: o.fs, path: path}
}

// Load builds a Config from four layers, later ones winning:
//
//  0. defaults()
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_* environment variables
//
// Env names are matched against the keys already loaded, so field names
// that contain underscores resolve correctly:
//
//	APP_SERVER_READ_TIMEOUT            -> server.read_timeout
//	APP_STORE_SEED_FILE                -> store.seed_file
//	APP_VALIDATION_BATCH_CONCURRENCY   -> validation.batch_concurrency
//	APP_CLIENT_RETRY_MAX_ATTEMPTS      -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, layer := range []string{"base", profile} {
		path := filepath.Join(o.configDir, layer+".yaml")
		if err := k.Load(o.source(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", layer, path, err)
		}
	}

	known := envKeys(k.Keys())
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that could escape configDir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}

// envKeys indexes koanf keys by their env spelling ("server.read_timeout"
// becomes "server_read_timeout").
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

// aferoFile is a koanf.Provider over a file in an afero filesystem.
type aferoFile struct {
	fs   afero.Fs
	path string
}

func (p aferoFile) ReadBytes() ([]byte, error) {
	return afero.ReadFile(p.fs, p.path)
}

func (p aferoFile) Read() (map[string]any, error) {
	return nil, errors.New("config: aferoFile does not support Read")
}
