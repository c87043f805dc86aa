package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	listItemPrefix = "ql:"
	listMetaPrefix = "qm:"
	// Separates the list name from the sequence, user ids never contain it
	listSeparator   = 0x00
	maxTxnConflicts = 5
)

// BadgerListStore keeps ordered lists in BadgerDB.
// Each item lives under "ql:<list>\x00<seq>" with a zero padded sequence so a
// prefix scan returns items in insertion order. Every write stamps all items
// of the list with the same TTL, so the list expires as a unit.
type BadgerListStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerListStore(db *badger.DB, log *slog.Logger) *BadgerListStore {
	return &BadgerListStore{db: db, log: log}
}

type listItem struct {
	key   []byte
	value []byte
}

func itemPrefix(list string) []byte {
	return append([]byte(listItemPrefix+list), listSeparator)
}

func itemKey(list string, seq uint64) []byte {
	return append(itemPrefix(list), []byte(fmt.Sprintf("%020d", seq))...)
}

func metaKey(list string) []byte {
	return []byte(listMetaPrefix + list)
}

// ScanPrefix returns the key prefix of every item of list, or of every list when list is empty.
func ScanPrefix(list string) []byte {
	if list == "" {
		return []byte(listItemPrefix)
	}
	return itemPrefix(list)
}

// ListName extracts the list an item key belongs to.
func ListName(key []byte) (string, bool) {
	rest, ok := bytes.CutPrefix(key, []byte(listItemPrefix))
	if !ok {
		return "", false
	}
	i := bytes.LastIndexByte(rest, listSeparator)
	if i < 0 {
		return "", false
	}
	return string(rest[:i]), true
}

// update runs fn in a read-write transaction, retrying when a concurrent
// writer committed first.
func (s *BadgerListStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnConflicts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug("Transaction conflict, retrying", "attempt", attempt+1)
	}
	return err
}

func readItems(txn *badger.Txn, list string) ([]listItem, error) {
	prefix := itemPrefix(list)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var items []listItem
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		items = append(items, listItem{key: item.KeyCopy(nil), value: value})
	}
	return items, nil
}

func nextSeq(txn *badger.Txn, list string) (uint64, error) {
	item, err := txn.Get(metaKey(list))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = item.Value(func(v []byte) error {
		if len(v) != 8 {
			return fmt.Errorf("corrupted sequence for list %q", list)
		}
		seq = binary.BigEndian.Uint64(v)
		return nil
	})
	return seq, err
}

// stamp writes items and the sequence counter again with a fresh TTL.
func stamp(txn *badger.Txn, list string, items []listItem, seq uint64, ttl time.Duration) error {
	for _, item := range items {
		if err := txn.SetEntry(badger.NewEntry(item.key, item.value).WithTTL(ttl)); err != nil {
			return err
		}
	}
	counter := make([]byte, 8)
	binary.BigEndian.PutUint64(counter, seq)
	return txn.SetEntry(badger.NewEntry(metaKey(list), counter).WithTTL(ttl))
}

func deleteAll(txn *badger.Txn, list string, items []listItem) error {
	for _, item := range items {
		if err := txn.Delete(item.key); err != nil {
			return err
		}
	}
	return txn.Delete(metaKey(list))
}

// Append adds values at the tail and refreshes the TTL of the whole list.
func (s *BadgerListStore) Append(ctx context.Context, list string, values [][]byte, ttl time.Duration) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		items, err := readItems(txn, list)
		if err != nil {
			return err
		}
		seq, err := nextSeq(txn, list)
		if err != nil {
			return err
		}
		for _, value := range values {
			items = append(items, listItem{key: itemKey(list, seq), value: value})
			seq++
		}
		return stamp(txn, list, items, seq, ttl)
	})
}

// Range follows the LRANGE convention: negative indexes count from the tail
// and stop is inclusive.
func (s *BadgerListStore) Range(_ context.Context, list string, start, stop int64) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		items, err := readItems(txn, list)
		if err != nil {
			return err
		}
		from, to, ok := bounds(int64(len(items)), start, stop)
		if !ok {
			return nil
		}
		for _, item := range items[from : to+1] {
			values = append(values, item.value)
		}
		return nil
	})
	return values, err
}

func bounds(length, start, stop int64) (int64, int64, bool) {
	if start < 0 {
		start += length
	}
	if stop < 0 {
		stop += length
	}
	if start < 0 {
		start = 0
	}
	if stop >= length {
		stop = length - 1
	}
	if length == 0 || start > stop {
		return 0, 0, false
	}
	return start, stop, true
}

func (s *BadgerListStore) Len(_ context.Context, list string) (int64, error) {
	var count int64
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := itemPrefix(list)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (s *BadgerListStore) TrimFront(ctx context.Context, list string, head [][]byte, ttl time.Duration) (bool, error) {
	trimmed := false
	err := s.update(ctx, func(txn *badger.Txn) error {
		trimmed = false
		items, err := readItems(txn, list)
		if err != nil {
			return err
		}
		if len(head) > len(items) {
			return nil
		}
		for i, value := range head {
			if !bytes.Equal(items[i].value, value) {
				return nil
			}
		}
		for _, item := range items[:len(head)] {
			if err := txn.Delete(item.key); err != nil {
				return err
			}
		}
		rest := items[len(head):]
		trimmed = true
		if len(rest) == 0 {
			return txn.Delete(metaKey(list))
		}
		seq, err := nextSeq(txn, list)
		if err != nil {
			return err
		}
		return stamp(txn, list, rest, seq, ttl)
	})
	return trimmed, err
}

// Rewrite replaces the list with what fn returns, in one transaction.
// An empty result deletes the list.
func (s *BadgerListStore) Rewrite(ctx context.Context, list string,
	fn func(values [][]byte) ([][]byte, error), ttl time.Duration) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		items, err := readItems(txn, list)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		current := make([][]byte, 0, len(items))
		for _, item := range items {
			current = append(current, item.value)
		}
		next, err := fn(current)
		if err != nil {
			return err
		}

		seq, err := nextSeq(txn, list)
		if err != nil {
			return err
		}
		if err := deleteAll(txn, list, items); err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}
		rewritten := make([]listItem, 0, len(next))
		for _, value := range next {
			rewritten = append(rewritten, listItem{key: itemKey(list, seq), value: value})
			seq++
		}
		return stamp(txn, list, rewritten, seq, ttl)
	})
}

func (s *BadgerListStore) Delete(ctx context.Context, list string) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		items, err := readItems(txn, list)
		if err != nil {
			return err
		}
		return deleteAll(txn, list, items)
	})
}

func (s *BadgerListStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return badger.ErrDBClosed
	}
	return nil
}
