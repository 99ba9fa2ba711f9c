package storage

import "context"

// ObjectStore uploads photo binaries and returns a publicly reachable
// URL for each stored object.
type ObjectStore interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, name string) error
}
