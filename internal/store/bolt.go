package store

import (
	"context"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketKV = "kv" // key: string -> value string

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens or creates a Bolt database at path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, &BackendError{Backend: "bolt", Op: "open", Err: err}
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketKV))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, &BackendError{Backend: "bolt", Op: "create bucket", Err: err}
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketKV)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// bbolt values are only valid inside the transaction
		value = string(v)
		found = true

		return nil
	})
	if err != nil {
		return "", false, &BackendError{Backend: "bolt", Op: "get " + key, Err: err}
	}

	return value, found, nil
}

func (b *Bolt) Set(_ context.Context, key, value string) error {
	err := b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketKV)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return &BackendError{Backend: "bolt", Op: "set " + key, Err: err}
	}

	return nil
}
