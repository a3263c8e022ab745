package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var InventoryConfig *Config

const (
	// MaxCacheTTL bounds how long a fetched document may be reused.
	MaxCacheTTL = 5 * time.Minute
	// MaxRootTTL bounds how long a service root may be reused.
	MaxRootTTL = time.Hour
)

var (
	errNegativeTTL     = errors.New("cache ttl cannot be negative")
	errNegativeRootTTL = errors.New("cache root_ttl cannot be negative")
	errTTLTooLarge     = errors.New("cache ttl exceeds maximum allowed value of 5 minutes")
	errRootTTLTooLarge = errors.New("cache root_ttl exceeds maximum allowed value of 1 hour")
)

type (
	// Config -.
	Config struct {
		App       `yaml:"app"`
		HTTP      `yaml:"http"`
		Log       `yaml:"logger"`
		Target    `yaml:"target"`
		Discovery `yaml:"discovery"`
		Cache     `yaml:"cache"`
		Secrets   `yaml:"secrets"`
		DB        `yaml:"db"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP serves metrics, health, and the latest inventory in watch mode.
	HTTP struct {
		Host  string `yaml:"host" env:"HTTP_HOST"`
		Port  string `env-required:"true" yaml:"port" env:"HTTP_PORT" validate:"required,numeric"`
		Pprof bool   `yaml:"pprof" env:"HTTP_PPROF"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	}

	// Target is the Redfish server to discover.
	Target struct {
		Scheme             string `yaml:"scheme" env:"TARGET_SCHEME" validate:"oneof=http https"`
		Host               string `yaml:"host" env:"TARGET_HOST" validate:"required,hostname_rfc1123|ip"`
		Port               int    `yaml:"port" env:"TARGET_PORT" validate:"min=1,max=65535"`
		PathPrefix         string `yaml:"path_prefix" env:"TARGET_PATH_PREFIX"`
		Username           string `yaml:"username" env:"TARGET_USERNAME"`
		Password           string `yaml:"password" env:"TARGET_PASSWORD"`
		ProtocolVersion    string `yaml:"protocol_version" env:"TARGET_PROTOCOL_VERSION" validate:"eq=1"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify" env:"TARGET_INSECURE_SKIP_VERIFY"`
	}

	// Discovery -.
	Discovery struct {
		Concurrency       int           `yaml:"concurrency" env:"DISCOVERY_CONCURRENCY" validate:"min=1,max=64"`
		FetchTimeout      time.Duration `yaml:"fetch_timeout" env:"DISCOVERY_FETCH_TIMEOUT"`
		StrictServiceRoot bool          `yaml:"strict_service_root" env:"DISCOVERY_STRICT_SERVICE_ROOT"`
		Interval          time.Duration `yaml:"interval" env:"DISCOVERY_INTERVAL"`
	}

	// Cache -.
	Cache struct {
		TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL"`
		RootTTL time.Duration `yaml:"root_ttl" env:"CACHE_ROOT_TTL"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
		Key     string `yaml:"key" env:"SECRETS_KEY"`
	}

	// DB -.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX" validate:"min=1"`
		URL     string `yaml:"url" env:"DB_URL"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "redfish-inventory",
			Repo:    "device-management-toolkit/redfish-inventory",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:  "localhost",
			Port:  "9181",
			Pprof: false,
		},
		Log: Log{
			Level: "info",
		},
		Target: Target{
			Scheme:          "https",
			Host:            "localhost",
			Port:            443,
			ProtocolVersion: "1",
		},
		Discovery: Discovery{
			Concurrency:       8,
			FetchTimeout:      30 * time.Second,
			StrictServiceRoot: true,
			Interval:          5 * time.Minute,
		},
		Cache: Cache{
			TTL:     30 * time.Second,
			RootTTL: 10 * time.Minute,
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/redfish-inventory",
			Key:     "password",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(ex), "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return err
	}

	if mkErr := os.MkdirAll(filepath.Dir(configPath), os.ModePerm); mkErr != nil {
		return mkErr
	}

	file, cErr := os.Create(configPath)
	if cErr != nil {
		return cErr
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()

	return encoder.Encode(cfg)
}

// NewConfig returns app config read from configPath (or the default location
// next to the executable), overridden by the environment, and validated.
func NewConfig(configPath string) (*Config, error) {
	InventoryConfig = defaultConfig()

	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(path, InventoryConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(InventoryConfig); err != nil {
		return nil, err
	}

	if err := InventoryConfig.Validate(); err != nil {
		return nil, err
	}

	return InventoryConfig, nil
}

// Validate checks field constraints and the cache bounds.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return cfg.ValidateCacheConfig()
}

// ValidateCacheConfig checks the cache TTLs.
func (cfg *Config) ValidateCacheConfig() error {
	switch {
	case cfg.Cache.TTL < 0:
		return errNegativeTTL
	case cfg.Cache.RootTTL < 0:
		return errNegativeRootTTL
	case cfg.Cache.TTL > MaxCacheTTL:
		return errTTLTooLarge
	case cfg.Cache.RootTTL > MaxRootTTL:
		return errRootTTLTooLarge
	}

	return nil
}
