package badger

import (
	"context"
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/storage"
)

// POIRepository implements storage.POIRepository for BadgerDB.
type POIRepository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ storage.POIRepository = (*POIRepository)(nil)

// NewPOIRepository creates a new POIRepository.
func NewPOIRepository(backend *Backend) (*POIRepository, error) {
	orderSeq, err := backend.GetSequence(poiOrderSeq)
	if err != nil {
		return nil, err
	}

	return &POIRepository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the catalog order sequence.
func (r *POIRepository) Close() error {
	return r.orderSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *POIRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddPOIs adds one or more POIs to storage.
func (r *POIRepository) AddPOIs(ctx context.Context, pois ...*core.POI) ([]*core.POI, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, poi := range pois {
			// Use content-based ID if not set
			if poi.Id == 0 {
				poi.Id = core.IDFromContent(poi.ContentKey())
			}

			key := makePOIKey(poi.Id)

			// Re-adding an existing POI overwrites it in place and keeps
			// its catalog order slot
			old, err := r.readPOI(tx, key)
			if err != nil {
				return err
			}

			if old == nil {
				seq, err := r.nextOrderSeq()
				if err != nil {
					return err
				}
				if err := tx.Set(makePOIOrderKey(seq), storage.MarshalID(poi.Id)); err != nil {
					return err
				}
				if err := tx.Set(makePOIOrderRevKey(poi.Id), marshalSeq(seq)); err != nil {
					return err
				}
				if err := tx.Set(makePOICategoryKey(poi.Category, seq), storage.MarshalID(poi.Id)); err != nil {
					return err
				}
			} else if old.Category != poi.Category {
				// Move the category index entry
				seq, err := r.readOrderSeq(tx, poi.Id)
				if err != nil {
					return err
				}
				if err := tx.Delete(makePOICategoryKey(old.Category, seq)); err != nil {
					return err
				}
				if err := tx.Set(makePOICategoryKey(poi.Category, seq), storage.MarshalID(poi.Id)); err != nil {
					return err
				}
			}

			// Store primary record
			if err := tx.Set(key, storage.MarshalPOI(poi)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return pois, err
}

// DeletePOIs removes POIs by their IDs.
func (r *POIRepository) DeletePOIs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePOIKey(id)

			// Read record to get metadata for index cleanup
			poi, err := r.readPOI(tx, key)
			if err != nil {
				return err
			}
			if poi == nil {
				return storage.ErrNotFound
			}

			seq, err := r.readOrderSeq(tx, id)
			if err != nil {
				return err
			}

			// Delete index entries
			if err := tx.Delete(makePOIOrderKey(seq)); err != nil {
				return err
			}
			if err := tx.Delete(makePOICategoryKey(poi.Category, seq)); err != nil {
				return err
			}
			if err := tx.Delete(makePOIOrderRevKey(id)); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPOI retrieves a single POI by ID.
func (r *POIRepository) GetPOI(ctx context.Context, id core.ID) (*core.POI, error) {
	var result *core.POI
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePOIKey(id)
		var err error
		result, err = r.readPOI(tx, key)
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

// GetPOIs retrieves multiple POIs by their IDs.
func (r *POIRepository) GetPOIs(ctx context.Context, ids ...core.ID) ([]*core.POI, error) {
	var result []*core.POI
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePOIKey(id)
			poi, err := r.readPOI(tx, key)
			if err != nil {
				return err
			}
			if poi != nil {
				result = append(result, poi)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListPOIs retrieves every POI in catalog (insertion) order.
func (r *POIRepository) ListPOIs(ctx context.Context) ([]*core.POI, error) {
	var results []*core.POI
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(poiOrderPrefix + ":")
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !hasPrefix(key, prefix) {
				break
			}

			// Read the ID from the index
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			poi, err := r.readPOI(tx, makePOIKey(id))
			if err != nil {
				return err
			}
			if poi != nil {
				results = append(results, poi)
			}
		}
		return nil
	}, false)

	return results, err
}

// ListPOIsByCategory retrieves every POI of the given category in catalog order.
func (r *POIRepository) ListPOIsByCategory(ctx context.Context, category string) ([]*core.POI, error) {
	var results []*core.POI
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialPOICategoryKey(category)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !hasPrefix(key, prefix) {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			poi, err := r.readPOI(tx, makePOIKey(id))
			if err != nil {
				return err
			}
			if poi != nil {
				results = append(results, poi)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountPOIs returns the number of POIs in the catalog.
func (r *POIRepository) CountPOIs(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(poiRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			if !hasPrefix(iter.Item().Key(), prefix) {
				break
			}
			count++
		}
		return nil
	}, false)

	return count, err
}

// Helper methods

// nextOrderSeq returns the next catalog order sequence number.
func (r *POIRepository) nextOrderSeq() (uint64, error) {
	seq, err := r.orderSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if seq == 0 {
		seq, err = r.orderSeq.Next()
	}
	return seq, err
}

// readOrderSeq reads the catalog order sequence number assigned to a POI.
func (r *POIRepository) readOrderSeq(tx *badger.Txn, id core.ID) (uint64, error) {
	item, err := tx.Get(makePOIOrderRevKey(id))
	if err != nil {
		return 0, err
	}

	var seq uint64
	err = item.Value(func(val []byte) error {
		seq = binary.BigEndian.Uint64(val)
		return nil
	})
	return seq, err
}

// readPOI reads a POI from the transaction.
func (r *POIRepository) readPOI(tx *badger.Txn, key []byte) (*core.POI, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var poi *core.POI
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		poi, unmarshalErr = storage.UnmarshalPOI(val)
		return unmarshalErr
	})
	return poi, err
}

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}
