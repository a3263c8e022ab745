package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrUnexpectedData = errors.New("unexpected secret data format")
)

// location maps a key to its secret path and data field. A key holding "/"
// names its own secret under the base path with the value in "value";
// any other key is a field of the secret at the base path.
func (c *Client) location(key string) (path, field string) {
	if strings.Contains(key, "/") {
		return c.path + "/" + key, "value"
	}

	return c.path, key
}

func (c *Client) readData(ctx context.Context, path string) (map[string]interface{}, error) {
	secret, err := c.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, err
	}

	if secret == nil {
		return nil, fmt.Errorf("%w at path %s", ErrSecretNotFound, path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w at path %s", ErrUnexpectedData, path)
	}

	return data, nil
}

// GetKeyValue reads one string value.
func (c *Client) GetKeyValue(ctx context.Context, key string) (string, error) {
	path, field := c.location(key)

	data, err := c.readData(ctx, path)
	if err != nil {
		return "", ErrSecretStore.Wrap("GetKeyValue", "Logical.Read", err)
	}

	value, ok := data[field]
	if !ok {
		return "", ErrSecretStore.Wrap("GetKeyValue", "lookup", fmt.Errorf("%w: key %s at path %s", ErrSecretNotFound, field, path))
	}

	s, ok := value.(string)
	if !ok {
		return "", ErrSecretStore.Wrap("GetKeyValue", "lookup", fmt.Errorf("%w: value for key %s is not a string", ErrUnexpectedData, field))
	}

	return s, nil
}
