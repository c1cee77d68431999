package corpus

import (
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Store persists encoded corpus entries in a pebble database, keyed by
// ksuid. Entries hold the binary encoding, not the document form, so a
// benchmark run measures exactly the bytes the codec produced.
type Store struct {
	db *pebble.DB
}

// OpenStore opens (or creates) a corpus database at path.
func OpenStore(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Add stores one encoded value under a fresh ksuid and returns the id.
func (s *Store) Add(encoded []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), encoded, pebble.NoSync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Get returns a copy of the entry stored under id.
func (s *Store) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the entry stored under id.
func (s *Store) Delete(id ksuid.KSUID) error {
	return s.db.Delete(id.Bytes(), pebble.NoSync)
}

// ForEach visits every entry in key order. The payload passed to fn is a
// copy and may be retained.
func (s *Store) ForEach(fn func(id ksuid.KSUID, encoded []byte) error) error {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return err
		}
		encoded := make([]byte, len(iter.Value()))
		copy(encoded, iter.Value())

		if err := fn(id, encoded); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Count returns the number of entries.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.ForEach(func(ksuid.KSUID, []byte) error {
		n++
		return nil
	})
	return n, err
}

// Flush forces pending writes to stable storage.
func (s *Store) Flush() error {
	return s.db.Flush()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
