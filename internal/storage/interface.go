package storage

import "context"

// Port is the key-value persistence the record store is built on. Values are
// opaque strings (JSON documents or plain text). Deleting an absent key is not
// an error.
type Port interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
