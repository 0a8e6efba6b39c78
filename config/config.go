package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Catalog backend identifiers.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

const (
	defaultSearchLimit = 10
	defaultRenderLimit = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Catalog selects the business catalog backend.
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firestore configuration for the document catalog backend.
	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Redis configuration for the reply cache. Optional; nil disables caching.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Directory configuration for search and rendering behaviour.
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig selects the catalog storage backend.
type CatalogConfig struct {
	// Backend is "postgres" or "firestore". Defaults to "postgres".
	Backend string `json:"backend" yaml:"backend"`
}

// FirestoreConfig defines Firestore connection settings.
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Collection holds business documents. Defaults to "businesses".
	Collection string `json:"collection" yaml:"collection"`
}

// RedisConfig defines Redis connection settings for the reply cache.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	StatsTTL time.Duration `json:"statsTtl" yaml:"statsTtl"`
}

// DirectoryConfig tunes search limits and support contact details.
type DirectoryConfig struct {
	// SearchLimit caps how many records a backend query fetches.
	SearchLimit int `json:"searchLimit" yaml:"searchLimit"`
	// RenderLimit caps how many records a reply renders.
	RenderLimit int `json:"renderLimit" yaml:"renderLimit"`
	// SupportEmail is shown by the 'contact' command.
	SupportEmail string `json:"supportEmail" yaml:"supportEmail"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIRESTORE_PROJECTID -> firestore.projectId (not firestore.projectid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Catalog.Backend == "" {
		cfg.Catalog.Backend = BackendPostgres
	}
	if cfg.Directory.SearchLimit <= 0 {
		cfg.Directory.SearchLimit = defaultSearchLimit
	}
	if cfg.Directory.RenderLimit <= 0 {
		cfg.Directory.RenderLimit = defaultRenderLimit
	}

	// Missing storage settings are a fatal startup condition, not a
	// per-request error.
	switch cfg.Catalog.Backend {
	case BackendPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("catalog backend is postgres but postgres config is missing")
		}
	case BackendFirestore:
		if cfg.Firestore == nil || cfg.Firestore.ProjectID == "" {
			return nil, errors.New("catalog backend is firestore but firestore config is missing")
		}
		if cfg.Firestore.Collection == "" {
			cfg.Firestore.Collection = "businesses"
		}
	default:
		return nil, errors.Errorf("unknown catalog backend: %s", cfg.Catalog.Backend)
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
