package cache_test

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pjt727/classwatch/data"
	"github.com/Pjt727/classwatch/data/cache"
	"github.com/Pjt727/classwatch/data/testdb"
)

func fall2022(t *testing.T) data.Term {
	t.Helper()
	term, err := data.NewTerm(data.SeasonEnumFall, 2022)
	require.NoError(t, err)
	return term
}

// every backend has to behave the same for the synchronizer
func exerciseStore(t *testing.T, store cache.Store) {
	ctx := context.Background()
	term := fall2022(t)
	other, err := data.NewTerm(data.SeasonEnumSpring, 2023)
	require.NoError(t, err)

	_, err = store.Get(ctx, term)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	first := cache.Record{Validator: `"abc"`, Document: []byte(`[{"code":"CSCI","courses":[]}]`)}
	require.NoError(t, store.Put(ctx, term, first))

	got, err := store.Get(ctx, term)
	require.NoError(t, err)
	assert.Equal(t, first.Validator, got.Validator)
	assert.Equal(t, first.Document, got.Document)
	assert.True(t, got.HasDocument())

	_, err = store.Get(ctx, other)
	assert.ErrorIs(t, err, cache.ErrCacheMiss, "records are scoped to their term")

	second := cache.Record{Validator: `"def"`, Document: []byte(`[]`)}
	require.NoError(t, store.Put(ctx, term, second))
	got, err = store.Get(ctx, term)
	require.NoError(t, err)
	assert.Equal(t, second.Validator, got.Validator)
	assert.Equal(t, second.Document, got.Document)

	require.NoError(t, store.Delete(ctx, term))
	_, err = store.Get(ctx, term)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, term))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, cache.NewMemoryStore())
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	ctx := context.Background()
	term := fall2022(t)
	store := cache.NewMemoryStore()
	doc := []byte("[]")
	require.NoError(t, store.Put(ctx, term, cache.Record{Document: doc}))
	doc[0] = 'x'
	got, err := store.Get(ctx, term)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got.Document)
}

func TestFileStore(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestFileStorePaths(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir)
	require.NoError(t, err)
	term := fall2022(t)

	require.NoError(t, store.Put(context.Background(), term, cache.Record{
		Validator: "W/\"1\"",
		Document:  []byte("[]"),
	}))

	validator, err := os.ReadFile(store.ValidatorPath(term))
	require.NoError(t, err)
	assert.Equal(t, "W/\"1\"", string(validator))
	document, err := os.ReadFile(store.DocumentPath(term))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(document))
	assert.Contains(t, store.ValidatorPath(term), "202209")
	assert.Contains(t, store.DocumentPath(term), "202209")
}

func TestFileStoreValidatorWithoutDocument(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	term := fall2022(t)
	require.NoError(t, os.WriteFile(store.ValidatorPath(term), []byte("stale"), 0o644))

	got, err := store.Get(context.Background(), term)
	require.NoError(t, err)
	assert.Equal(t, "stale", got.Validator)
	assert.False(t, got.HasDocument())
}

func TestSQLStoreIntegration(t *testing.T) {
	db, err := testdb.SetupTestDb(context.Background())
	if err == testdb.ErrNoTestDb {
		t.Skip("TEST_DB_CONN not set")
	}
	require.NoError(t, err)
	defer db.Close()
	exerciseStore(t, cache.NewSQLStore(db))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())
	exerciseStore(t, cache.NewRedisStore(client))
}
