package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// layer is one YAML file of the hierarchy.
type layer struct {
	path     string
	optional bool
}

// Load builds the configuration of profile from, lowest precedence first:
//
//	built-in defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	{dir}/{profile}.local.yaml (optional, kept out of version control)
//	APP_* environment variables
//
// Environment names are matched against the keys already loaded, so
// underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT         -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS   -> client.retry.max_attempts
//	APP_ADMIN_ROLES_ROLE_VIEWER     -> admin.roles.ROLE_VIEWER
//
// A variable overriding a list key is split on commas, e.g.
// APP_ADMIN_EXPORT_FORMATS=csv,json.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	layers := []layer{
		{path: filepath.Join(o.configDir, "base.yaml")},
		{path: filepath.Join(o.configDir, profile+".yaml")},
		{path: filepath.Join(o.configDir, profile+".local.yaml"), optional: true},
	}
	for _, l := range layers {
		if l.optional {
			if _, err := os.Stat(l.path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
		}
		if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", l.path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k),
	}), nil); err != nil {
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

// envTransform maps APP_* variables onto the keys loaded so far. Unknown
// names fall back to replacing every underscore with a dot.
func envTransform(k *koanf.Koanf) func(string, string) (string, any) {
	lookup := buildEnvLookup(k.Keys())
	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		key, ok := lookup[name]
		if !ok {
			return strings.ReplaceAll(name, "_", "."), value
		}
		switch k.Get(key).(type) {
		case []any, []string:
			return key, splitList(value)
		default:
			return key, value
		}
	}
}

// buildEnvLookup indexes keys by their lowercase, underscore-joined form.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ToLower(strings.ReplaceAll(key, ".", "_"))] = key
	}
	return lookup
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
