package orm

import (
	"reflect"
	"regexp"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z]{3,10}$`).MatchString

// ModelBucket is implemented by buckets that operate on Models rather than
// raw bytes.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db nftmkt.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns whether an entity with given primary key exists.
	Has(db nftmkt.ReadOnlyKVStore, key []byte) (bool, error)

	// Put saves given model in the database under given key.
	Put(db nftmkt.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db nftmkt.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket that operates directly on the
// KVStore, namespacing all keys with the given bucket name.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
	}
}

type modelBucket struct {
	prefix []byte
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte(nil), mb.prefix...), key...)
}

func (mb *modelBucket) One(db nftmkt.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}

	if k := reflect.TypeOf(dest).Kind(); k != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "%T is not a pointer", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (mb *modelBucket) Has(db nftmkt.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(mb.dbKey(key))
}

func (mb *modelBucket) Put(db nftmkt.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db nftmkt.KVStore, key []byte) error {
	dbKey := mb.dbKey(key)
	ok, err := db.Has(dbKey)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return db.Delete(dbKey)
}
