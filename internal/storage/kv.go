// Package storage provides the durable key-value stores that back the
// emergency contact list.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable key-value store. Put overwrites the whole value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Options selects and parameterises a backend.
type Options struct {
	Backend string

	// Dir holds one file per key for the file backend.
	Dir string

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string

	DynamoTable    string
	DynamoRegion   string
	DynamoEndpoint string
}

// Open builds the backend named in opts.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		return NewFileKV(opts.Dir)
	case BackendSQLite:
		return OpenSQLiteKV(ctx, opts.SQLitePath)
	case BackendDynamoDB:
		return OpenDynamoKV(ctx, opts.DynamoTable, opts.DynamoRegion, opts.DynamoEndpoint)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("storage: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
