// Package config loads application configuration from defaults, an optional
// TOML file, and PROJECTPROBE_-prefixed environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var k = koanf.New(".")

// Accessor namespaces, mirroring the config sections.
var (
	Server   serverConfig
	Database databaseConfig
	GitHub   githubConfig
	Groq     groqConfig
	Cache    cacheConfig
	Snapshot snapshotConfig
)

// Load initializes configuration. A non-empty configPath overrides the
// default lookup locations.
func Load(configPath string) error {
	_ = godotenv.Load()

	k.Load(confmap.Provider(map[string]interface{}{
		"env":                         "dev",
		"server.port":                 8080,
		"server.cors_allowed_origins": []string{"*"},
		"github.base_url":             "https://api.github.com",
		"groq.base_url":               "https://api.groq.com/openai/v1",
		"groq.model":                  "llama3-8b-8192",
		"groq.temperature":            0.5,
		"groq.max_tokens":             1024,
		"groq.timeout_seconds":        20,
		"cache.backend":               "memory",
		"cache.size":                  256,
		"snapshot.clone_dir":          os.TempDir() + "/projectprobe",
		"snapshot.max_files":          100,
		"snapshot.max_file_bytes":     65536,
		"snapshot.max_total_bytes":    1 << 20,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range []string{"./projectprobe.toml", "$HOME/.projectprobe.toml"} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider("PROJECTPROBE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "PROJECTPROBE_")), "_", ".", -1)
	}), nil)

	// Common unprefixed variables keep working for local setups.
	if tok := os.Getenv("GITHUB_TOKEN"); tok != "" && k.String("github.token") == "" {
		k.Load(confmap.Provider(map[string]interface{}{"github.token": tok}, "."), nil)
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" && k.String("groq.api_key") == "" {
		k.Load(confmap.Provider(map[string]interface{}{"groq.api_key": key}, "."), nil)
	}

	return nil
}

// MustLoad is Load for entry points that cannot continue without config.
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
}

// IsDev reports whether the service runs in development mode.
func IsDev() bool {
	return k.String("env") != "prod"
}

type serverConfig struct{}

func (serverConfig) Port() int { return k.Int("server.port") }

func (serverConfig) CorsAllowedOrigins() []string { return k.Strings("server.cors_allowed_origins") }

type databaseConfig struct{}

func (databaseConfig) Dsn() string { return k.String("database.dsn") }

type githubConfig struct{}

func (githubConfig) BaseURL() string { return k.String("github.base_url") }

func (githubConfig) Token() string { return k.String("github.token") }

type groqConfig struct{}

func (groqConfig) ApiKey() string { return k.String("groq.api_key") }

func (groqConfig) BaseURL() string { return k.String("groq.base_url") }

func (groqConfig) Model() string { return k.String("groq.model") }

func (groqConfig) Temperature() float64 { return k.Float64("groq.temperature") }

func (groqConfig) MaxTokens() int { return k.Int("groq.max_tokens") }

func (groqConfig) TimeoutSeconds() int { return k.Int("groq.timeout_seconds") }

type cacheConfig struct{}

func (cacheConfig) Backend() string { return k.String("cache.backend") }

func (cacheConfig) Size() int { return k.Int("cache.size") }

type snapshotConfig struct{}

func (snapshotConfig) CloneDir() string { return k.String("snapshot.clone_dir") }

func (snapshotConfig) MaxFiles() int { return k.Int("snapshot.max_files") }

func (snapshotConfig) MaxFileBytes() int64 { return k.Int64("snapshot.max_file_bytes") }

func (snapshotConfig) MaxTotalBytes() int64 { return k.Int64("snapshot.max_total_bytes") }
