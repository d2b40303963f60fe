package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/storage"
)

// SynonymRepository implements storage.SynonymRepository for BadgerDB.
type SynonymRepository struct {
	backend *Backend
}

var _ storage.SynonymRepository = (*SynonymRepository)(nil)

// NewSynonymRepository creates a new SynonymRepository.
func NewSynonymRepository(backend *Backend) (*SynonymRepository, error) {
	return &SynonymRepository{
		backend: backend,
	}, nil
}

// Close releases repository resources. It does not close the backend.
func (r *SynonymRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SynonymRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutGroups stores synonym groups keyed by their canonical key.
// An existing group with the same key is replaced.
func (r *SynonymRepository) PutGroups(ctx context.Context, groups ...*core.SynonymGroup) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, group := range groups {
			key := makeSynonymKey(group.Key)
			if err := tx.Set(key, storage.MarshalSynonymGroup(group)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetGroup retrieves a synonym group by its canonical key.
func (r *SynonymRepository) GetGroup(ctx context.Context, key string) (*core.SynonymGroup, error) {
	var result *core.SynonymGroup
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readGroup(tx, makeSynonymKey(key))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListGroups retrieves all synonym groups ordered by key.
func (r *SynonymRepository) ListGroups(ctx context.Context) ([]*core.SynonymGroup, error) {
	var results []*core.SynonymGroup
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(synonymPrefix + ":")
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			if !hasPrefix(iter.Item().Key(), prefix) {
				break
			}

			var group *core.SynonymGroup
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				group, unmarshalErr = storage.UnmarshalSynonymGroup(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, group)
		}
		return nil
	}, false)

	return results, err
}

// DeleteGroups removes synonym groups by their keys.
func (r *SynonymRepository) DeleteGroups(ctx context.Context, keys ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			storageKey := makeSynonymKey(key)

			// Verify the group exists before deleting
			group, err := r.readGroup(tx, storageKey)
			if err != nil {
				return err
			}
			if group == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(storageKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readGroup reads a synonym group from the transaction.
func (r *SynonymRepository) readGroup(tx *badger.Txn, key []byte) (*core.SynonymGroup, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var group *core.SynonymGroup
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		group, unmarshalErr = storage.UnmarshalSynonymGroup(val)
		return unmarshalErr
	})
	return group, err
}
