package ports

import "context"

// SecretSource resolves a named secret held outside the configuration.
type SecretSource interface {
	Get(ctx context.Context, key string) (string, error)
}
