// Package app wires configuration into the discovery pipeline and runs it
// once, periodically, or as a fixture server.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/internal/cache"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	transport "github.com/device-management-toolkit/redfish-inventory/internal/repository/redfish"
	"github.com/device-management-toolkit/redfish-inventory/internal/repository/sqldb"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/inventory"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/redfish"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
	secrets "github.com/device-management-toolkit/redfish-inventory/pkg/secrets/vault"
)

var Version = "DEVELOPMENT"

// ErrSecretStoreTokenNotConfigured is returned when a secret store address
// is set without a token.
var ErrSecretStoreTokenNotConfigured = errors.New("secret store token not configured")

// Function pointers for better testability.
var (
	newSecretStore = func(cfg *config.Secrets) (secrets.Storager, error) {
		return secrets.NewClient(cfg)
	}
	openStore = func(ctx context.Context, cfg *config.Config, log logger.Interface) (inventoryStore, error) {
		return sqldb.New(ctx, cfg.DB.URL, cfg.DB.PoolMax, log)
	}
)

// inventoryStore is the persistence the app needs: the use case Store plus
// lifecycle.
type inventoryStore interface {
	inventory.Store
	Close() error
}

// NewLogger builds the process logger and routes the standard library and gin
// logs through it.
func NewLogger(cfg *config.Config) logger.Interface {
	log := logger.New(cfg.Log.Level)

	logger.SetupStdLog(log)
	logger.SetupGin(log)

	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	return log
}

// ConnectionParams maps the Target section onto connection parameters.
func ConnectionParams(cfg *config.Config, password string) redfish.ConnectionParams {
	return redfish.ConnectionParams{
		Endpoint: redfishv1.Endpoint{
			Scheme: cfg.Target.Scheme,
			Host:   cfg.Target.Host,
			Port:   cfg.Target.Port,
		},
		PathPrefix:      cfg.Target.PathPrefix,
		Username:        cfg.Target.Username,
		Password:        password,
		ProtocolVersion: cfg.Target.ProtocolVersion,
	}
}

// resolvePassword returns the configured target password, or reads it from
// the secret store when none is configured and a store address is.
func resolvePassword(ctx context.Context, cfg *config.Config, log logger.Interface) (string, error) {
	if cfg.Target.Password != "" || cfg.Secrets.Address == "" {
		return cfg.Target.Password, nil
	}

	if cfg.Secrets.Token == "" {
		return "", ErrSecretStoreTokenNotConfigured
	}

	store, err := newSecretStore(&cfg.Secrets)
	if err != nil {
		return "", err
	}

	password, err := store.GetKeyValue(ctx, cfg.Secrets.Key)
	if err != nil {
		return "", fmt.Errorf("app - resolvePassword: %w", err)
	}

	log.Info("target password read from secret store", "address", cfg.Secrets.Address, "path", cfg.Secrets.Path)

	return password, nil
}

// pipeline is everything one discovery run needs.
type pipeline struct {
	assembler *inventory.Assembler
	params    redfish.ConnectionParams
	cache     *cache.Cache
}

func newPipeline(ctx context.Context, cfg *config.Config, log logger.Interface) (*pipeline, error) {
	password, err := resolvePassword(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	params := ConnectionParams(cfg, password)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	docs := cache.NewFromConfig(cfg)

	opts := []transport.Option{
		transport.InsecureSkipVerify(cfg.Target.InsecureSkipVerify),
		transport.Cache(docs),
	}

	if params.Username != "" {
		opts = append(opts, transport.Credentials(params.Username, params.Password))
	}

	if cfg.Discovery.FetchTimeout > 0 {
		opts = append(opts, transport.Timeout(cfg.Discovery.FetchTimeout))
	}

	client := transport.New(params.Endpoint, log, opts...)
	locator := redfish.NewServiceRootLocator(client, log, redfish.WithStrictRoot(cfg.Discovery.StrictServiceRoot))
	reader := redfish.NewEntityReader(redfishv1.DefaultVocabulary())

	assembler := inventory.New(client, locator, reader, log,
		inventory.Concurrency(cfg.Discovery.Concurrency),
		inventory.FetchTimeout(cfg.Discovery.FetchTimeout),
	)

	return &pipeline{assembler: assembler, params: params, cache: docs}, nil
}

// maybeOpenStore opens the snapshot store when a database URL is configured.
func maybeOpenStore(ctx context.Context, cfg *config.Config, log logger.Interface) (inventoryStore, error) {
	if cfg.DB.URL == "" {
		return nil, nil //nolint:nilnil // no store configured
	}

	return openStore(ctx, cfg, log)
}
