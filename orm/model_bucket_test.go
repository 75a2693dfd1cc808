package orm

import (
	"encoding/binary"
	"testing"

	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/store"
)

// counter is a minimal model used to exercise the bucket.
type counter struct {
	value int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.value), nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.value = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.value < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	if err := b.Put(db, []byte("c1"), &counter{value: 1}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}

	var got counter
	if err := b.One(db, []byte("c1"), &got); err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if got.value != 1 {
		t.Fatalf("want 1, got %d", got.value)
	}
}

func TestModelBucketOneNotFound(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	var got counter
	if err := b.One(db, []byte("missing"), &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	err := b.Put(db, []byte("c1"), &counter{value: -1})
	if !errors.ErrState.Is(err) {
		t.Fatalf("want a validation error, got %+v", err)
	}
	if ok, _ := b.Has(db, []byte("c1")); ok {
		t.Fatal("invalid model must not be stored")
	}
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	if err := b.Delete(db, []byte("c1")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	if err := b.Put(db, []byte("c1"), &counter{value: 5}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}
	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete: %+v", err)
	}
	if ok, _ := b.Has(db, []byte("c1")); ok {
		t.Fatal("deleted model must be gone")
	}
}

func TestModelBucketPrefixesAreIsolated(t *testing.T) {
	db := store.MemStore()
	one := NewModelBucket("alpha")
	two := NewModelBucket("bravo")

	if err := one.Put(db, []byte("k"), &counter{value: 7}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}
	if ok, _ := two.Has(db, []byte("k")); ok {
		t.Fatal("buckets must not share a keyspace")
	}
}

func TestNewModelBucketRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "UP", "in valid", "waytoolongname"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("name %q must panic", name)
				}
			}()
			NewModelBucket(name)
		}()
	}
}
