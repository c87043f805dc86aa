package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newTestStore(t *testing.T) *BadgerListStore {
	db, cleanup := SetupTestDB(t)
	t.Cleanup(cleanup)
	return NewBadgerListStore(db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func values(items ...string) [][]byte {
	out := make([][]byte, 0, len(items))
	for _, item := range items {
		out = append(out, []byte(item))
	}
	return out
}

func TestBadgerListStore_AppendAndRange(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)

	// Given three appends on the same list
	req.NoError(store.Append(ctx, "offline_queue:alice", values("a"), time.Hour))
	req.NoError(store.Append(ctx, "offline_queue:alice", values("b", "c"), time.Hour))

	// Then the list reads back in insertion order
	all, err := store.Range(ctx, "offline_queue:alice", 0, -1)
	req.NoError(err)
	req.Equal(values("a", "b", "c"), all)

	head, err := store.Range(ctx, "offline_queue:alice", 0, 1)
	req.NoError(err)
	req.Equal(values("a", "b"), head)

	tail, err := store.Range(ctx, "offline_queue:alice", -1, -1)
	req.NoError(err)
	req.Equal(values("c"), tail)

	beyond, err := store.Range(ctx, "offline_queue:alice", 5, 10)
	req.NoError(err)
	req.Empty(beyond)

	length, err := store.Len(ctx, "offline_queue:alice")
	req.NoError(err)
	req.Equal(int64(3), length)
}

func TestBadgerListStore_ListsDoNotOverlap(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)

	// A list whose name extends another one must stay separate
	req.NoError(store.Append(ctx, "offline_queue:alice", values("a"), time.Hour))
	req.NoError(store.Append(ctx, "offline_queue:alice:2", values("z"), time.Hour))

	length, err := store.Len(ctx, "offline_queue:alice")
	req.NoError(err)
	req.Equal(int64(1), length)

	name, ok := ListName(itemKey("offline_queue:alice:2", 7))
	req.True(ok)
	req.Equal("offline_queue:alice:2", name)
}

func TestScanPrefix_SeparatesListsSharingAPrefix(t *testing.T) {
	req := require.New(t)

	req.Equal([]byte("ql:"), ScanPrefix(""))
	req.True(bytes.HasPrefix(itemKey("offline_queue:alice", 1), ScanPrefix("offline_queue:alice")))
	req.False(bytes.HasPrefix(itemKey("offline_queue:alice2", 1), ScanPrefix("offline_queue:alice")))
}

func TestBadgerListStore_MissingListIsEmpty(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)

	all, err := store.Range(ctx, "offline_queue:nobody", 0, -1)
	req.NoError(err)
	req.Empty(all)

	length, err := store.Len(ctx, "offline_queue:nobody")
	req.NoError(err)
	req.Zero(length)

	req.NoError(store.Delete(ctx, "offline_queue:nobody"))
	req.NoError(store.Rewrite(ctx, "offline_queue:nobody", func(v [][]byte) ([][]byte, error) {
		return values("ghost"), nil
	}, time.Hour))
	length, err = store.Len(ctx, "offline_queue:nobody")
	req.NoError(err)
	req.Zero(length)
}

func TestBadgerListStore_ExpiresAsAUnit(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)

	// Given an item written with a short TTL
	req.NoError(store.Append(ctx, "offline_queue:alice", values("a"), time.Second))
	time.Sleep(600 * time.Millisecond)

	// When a second item refreshes the list, the first one gets the new TTL too
	req.NoError(store.Append(ctx, "offline_queue:alice", values("b"), 3*time.Second))
	time.Sleep(1500 * time.Millisecond)
	all, err := store.Range(ctx, "offline_queue:alice", 0, -1)
	req.NoError(err)
	req.Equal(values("a", "b"), all)

	// And once the window has passed nothing is left
	req.NoError(store.Append(ctx, "offline_queue:bob", values("x"), time.Second))
	time.Sleep(2100 * time.Millisecond)
	gone, err := store.Range(ctx, "offline_queue:bob", 0, -1)
	req.NoError(err)
	req.Empty(gone)
}

func TestBadgerListStore_TrimFront(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)
	req.NoError(store.Append(ctx, "l", values("a", "b", "c"), time.Hour))

	// A stale head is refused
	trimmed, err := store.TrimFront(ctx, "l", values("b"), time.Hour)
	req.NoError(err)
	req.False(trimmed)

	trimmed, err = store.TrimFront(ctx, "l", values("a", "b"), time.Hour)
	req.NoError(err)
	req.True(trimmed)

	all, err := store.Range(ctx, "l", 0, -1)
	req.NoError(err)
	req.Equal(values("c"), all)

	// Appending after a trim keeps the order
	req.NoError(store.Append(ctx, "l", values("d"), time.Hour))
	all, err = store.Range(ctx, "l", 0, -1)
	req.NoError(err)
	req.Equal(values("c", "d"), all)
}

func TestBadgerListStore_Rewrite(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)
	req.NoError(store.Append(ctx, "l", values("a", "b", "c"), time.Hour))

	// When the middle element is removed
	req.NoError(store.Rewrite(ctx, "l", func(v [][]byte) ([][]byte, error) {
		return [][]byte{v[0], v[2]}, nil
	}, time.Hour))
	req.NoError(store.Append(ctx, "l", values("d"), time.Hour))

	all, err := store.Range(ctx, "l", 0, -1)
	req.NoError(err)
	req.Equal(values("a", "c", "d"), all)

	// A failing rewrite leaves the list untouched
	req.Error(store.Rewrite(ctx, "l", func(v [][]byte) ([][]byte, error) {
		return nil, fmt.Errorf("boom")
	}, time.Hour))
	length, err := store.Len(ctx, "l")
	req.NoError(err)
	req.Equal(int64(3), length)

	// An empty result deletes the list
	req.NoError(store.Rewrite(ctx, "l", func(v [][]byte) ([][]byte, error) { return nil, nil }, time.Hour))
	length, err = store.Len(ctx, "l")
	req.NoError(err)
	req.Zero(length)
}

func TestBadgerListStore_ConcurrentAppends(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- store.Append(ctx, "l", values(fmt.Sprintf("v%d", i)), time.Hour)
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			req.ErrorIs(err, badger.ErrConflict)
		}
	}
	length, err := store.Len(ctx, "l")
	req.NoError(err)
	req.Equal(int64(succeeded), length)
}

func TestBadgerListStore_Ping(t *testing.T) {
	req := require.New(t)
	db, _ := SetupTestDB(t)
	store := NewBadgerListStore(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(store.Ping(context.Background()))
	req.NoError(db.Close())
	req.ErrorIs(store.Ping(context.Background()), badger.ErrDBClosed)
}
