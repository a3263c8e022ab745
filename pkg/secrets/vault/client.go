// Package secrets reads BMC credentials in a HashiCorp Vault KV v2
// engine.
package secrets

import (
	"context"

	"github.com/hashicorp/vault/api"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
)

// DefaultSecretPath is used when neither the config nor an option sets a path.
const DefaultSecretPath = "secret/data/redfish-inventory"

var ErrSecretStore = inventoryerrors.SecretStoreError{Inventory: inventoryerrors.CreateInventoryError("vault")}

// Storager reads values from a key/value secret store.
type Storager interface {
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// Client implements Storager for HashiCorp Vault.
type Client struct {
	client *api.Client
	path   string
}

var _ Storager = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets the KV v2 data path secrets live under.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client.
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Vault client from cfg. Options win over cfg.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		if cfg != nil && cfg.Address != "" {
			vaultConfig.Address = cfg.Address
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, ErrSecretStore.Wrap("NewClient", "api.NewClient", err)
		}

		if cfg != nil {
			client.SetToken(cfg.Token)
		}

		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}
