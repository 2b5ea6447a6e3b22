package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithBaseURL points the todo client at baseURL, overriding every file and
// environment layer. An empty baseURL is ignored so an unset --base-url flag
// leaves the configured backend alone.
func WithBaseURL(baseURL string) Option {
	return func(o *loadOptions) {
		if baseURL != "" {
			o.overrides["client.base_url"] = baseURL
		}
	}
}

// Load builds the configuration from these layers, later layers winning:
//
//  0. Built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//  4. Options such as WithBaseURL
//
// Environment names are matched against the keys already loaded, so field
// names containing underscores resolve unambiguously:
//
//	APP_CLIENT_BASE_URL               -> client.base_url
//	APP_CLIENT_TODOS_PATH             -> client.todos_path
//	APP_CLIENT_MAX_CONCURRENCY        -> client.max_concurrency
//	APP_SERVER_REQUEST_TIMEOUT        -> server.request_timeout
//	APP_SERVER_CORS_ALLOWED_ORIGINS   -> server.cors.allowed_origins
//
// List keys such as server.cors.allowed_origins take a comma-separated value.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, overrides: map[string]any{}}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	if err := k.Load(defaultsProvider(), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(envProvider(k), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
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

// envProvider maps APP_ variables onto the keys already present in k.
// Unknown names fall back to replacing every underscore with a dot.
func envProvider(k *koanf.Koanf) *env.Env {
	lookup := buildEnvLookup(k.Keys())

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			koanfKey, ok := lookup[key]
			if !ok {
				return strings.ReplaceAll(key, "_", "."), value
			}
			if isList(k.Get(koanfKey)) {
				return koanfKey, splitList(value)
			}
			return koanfKey, value
		},
	})
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	default:
		return false
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// validateProfile rejects profile names that would escape the config dir.
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

// buildEnvLookup maps "client_todos_path" style names to "client.todos_path".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
