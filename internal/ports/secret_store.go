package ports

import "context"

// SecretStore holds key material and other values that must not land in
// plain config files. Keys are namespaced strings such as
// "wallet/<profile>/owner" or "wallet/<profile>/session".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
