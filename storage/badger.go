// ABOUTME: BadgerDB-backed persistence adapter
// ABOUTME: Default on-disk backend, with an in-memory mode for tests
package storage

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

// BadgerKV implements KV on top of a local BadgerDB. A QuotaBytes budget, when
// set, bounds the total size of stored values the way browser storage bounds
// an origin.
type BadgerKV struct {
	db    *badger.DB
	quota int64

	mu    sync.RWMutex
	total int64
}

// OpenBadger opens (or creates) a badger-backed store at dir. An empty dir
// opens an in-memory store, which tests use for isolation.
func OpenBadger(dir string, quota int64) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	kv := &BadgerKV{db: db, quota: quota}
	if err := kv.recountTotal(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

// recountTotal scans existing values so the quota accounting survives
// restarts.
func (b *BadgerKV) recountTotal() error {
	return b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		b.total = 0
		for it.Rewind(); it.Valid(); it.Next() {
			b.total += it.Item().ValueSize()
		}
		return nil
	})
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *BadgerKV) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.valueSize(key)
	next := b.total - prev + int64(len(value))
	if b.quota > 0 && next > b.quota {
		return ErrQuotaExceeded
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return err
	}
	b.total = next
	return nil
}

func (b *BadgerKV) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.valueSize(key)
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return err
	}
	b.total -= prev
	return nil
}

func (b *BadgerKV) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}

// valueSize returns the stored size of key's current value, 0 when absent.
// Callers must hold the write lock.
func (b *BadgerKV) valueSize(key string) int64 {
	var size int64
	_ = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		size = item.ValueSize()
		return nil
	})
	return size
}
