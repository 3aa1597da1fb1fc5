// Package kvstore implements the on-device key-value store the application
// persists its state into: string keys holding JSON-serialized documents.
package kvstore

import "context"

// Store is the key-value contract consumed by the repositories.
//
// Get returns (nil, nil) when the key is not set; a nil value means absent.
// Set overwrites any previous value for the key. Delete is a no-op for a
// missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
