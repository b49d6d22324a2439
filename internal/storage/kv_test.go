package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory keyed by the "key" attribute.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]dynamodbtypes.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]dynamodbtypes.AttributeValue)}
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := in.Key["key"].(*dynamodbtypes.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := in.Item["key"].(*dynamodbtypes.AttributeValueMemberS).Value
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func backends(t *testing.T) map[string]KV {
	t.Helper()
	ctx := context.Background()

	fileKV, err := NewFileKV(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqliteKV, err := OpenSQLiteKV(ctx, filepath.Join(t.TempDir(), "safeher.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteKV.Close() })

	memKV, err := OpenSQLiteKV(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = memKV.Close() })

	return map[string]KV{
		"file":          fileKV,
		"sqlite":        sqliteKV,
		"sqlite-memory": memKV,
		"dynamodb":      NewDynamoKV(newFakeDynamo(), "contacts"),
	}
}

func TestKVRoundTripAndOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "contacts")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Put(ctx, "contacts", []byte(`[{"id":"1"}]`)))
			got, err := kv.Get(ctx, "contacts")
			require.NoError(t, err)
			require.JSONEq(t, `[{"id":"1"}]`, string(got))

			require.NoError(t, kv.Put(ctx, "contacts", []byte(`[]`)))
			got, err = kv.Get(ctx, "contacts")
			require.NoError(t, err)
			require.Equal(t, "[]", string(got))
		})
	}
}

func TestKVRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.Error(t, kv.Put(ctx, "", []byte("x")))
			require.Error(t, kv.Put(ctx, "../escape", []byte("x")))
			_, err := kv.Get(ctx, "a/b")
			require.Error(t, err)
		})
	}
}

func TestFileKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "contacts", []byte(`["a"]`)))

	second, err := NewFileKV(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "contacts")
	require.NoError(t, err)
	require.Equal(t, `["a"]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := OpenSQLiteKV(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "contacts", []byte(`["b"]`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteKV(ctx, path)
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(ctx, "contacts")
	require.NoError(t, err)
	require.Equal(t, `["b"]`, string(got))
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, Options{Backend: "file", Dir: t.TempDir()})
	require.NoError(t, err)
	require.IsType(t, &FileKV{}, kv)

	kv, err = Open(ctx, Options{Backend: "SQLite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	require.IsType(t, &SQLiteKV{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(ctx, Options{Backend: "etcd"})
	require.EqualError(t, err, `storage: unknown backend "etcd"`)

	_, err = Open(ctx, Options{Backend: "dynamodb"})
	require.Error(t, err)
}
