package radapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// BadgerContentStore is a disk-backed ContentStore using BadgerDB,
// adapted from the teacher's node/edge key-prefix scheme down to the
// one concern a ContentStore has: id -> Content.
//
// It exists so a corpus served through MemoryAdapter can survive process
// restarts. It has nothing to do with the per-call traversal state,
// which spec §1 explicitly keeps unpersisted — BadgerContentStore only
// ever stores the documents an adapter serves from.
type BadgerContentStore struct {
	db *badger.DB
}

const contentKeyPrefix = byte(0x01)

// NewBadgerContentStore opens (creating if needed) a BadgerDB database
// rooted at dataDir.
func NewBadgerContentStore(dataDir string) (*BadgerContentStore, error) {
	opts := badger.DefaultOptions(dataDir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("radapter: open badger store: %w", err)
	}
	return &BadgerContentStore{db: db}, nil
}

// NewInMemoryBadgerContentStore opens a BadgerDB database that keeps all
// data in RAM — useful for tests that want Badger's code paths exercised
// without touching disk.
func NewInMemoryBadgerContentStore() (*BadgerContentStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("radapter: open in-memory badger store: %w", err)
	}
	return &BadgerContentStore{db: db}, nil
}

func contentKey(id string) []byte {
	return append([]byte{contentKeyPrefix}, []byte(id)...)
}

func (b *BadgerContentStore) Put(_ context.Context, c rnode.Content) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("radapter: marshal content %q: %w", c.ID, err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(contentKey(c.ID), data)
	})
}

func (b *BadgerContentStore) Get(_ context.Context, id string) (rnode.Content, bool, error) {
	var c rnode.Content
	found := false
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(contentKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &c)
		})
	})
	if err != nil {
		return rnode.Content{}, false, fmt.Errorf("radapter: get %q: %w", id, err)
	}
	return c, found, nil
}

func (b *BadgerContentStore) All(_ context.Context) ([]rnode.Content, error) {
	var out []rnode.Content
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{contentKeyPrefix}
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var c rnode.Content
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			}); err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("radapter: list contents: %w", err)
	}
	return out, nil
}

func (b *BadgerContentStore) Close() error {
	return b.db.Close()
}
