package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const documentsBucket = "documents"

// BoltClient stores documents in a BoltDB file. The file is opened for the
// duration of each operation only, so that a long running timer does not
// hold the lock and block other focusflow commands.
type BoltClient struct {
	path    string
	timeout time.Duration
}

// NewBoltClient returns a client for the BoltDB file at path, creating the
// file and its bucket if necessary.
func NewBoltClient(path string) (*BoltClient, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	c := &BoltClient{
		path:    path,
		timeout: 1 * time.Second,
	}

	err := c.update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// open creates or opens the database and locks it.
func (c *BoltClient) open() (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(c.path, fileMode, &bolt.Options{Timeout: c.timeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errStoreBusy.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

func (c *BoltClient) update(fn func(tx *bolt.Tx) error) error {
	db, err := c.open()
	if err != nil {
		return err
	}

	defer db.Close()

	return db.Update(fn)
}

func (c *BoltClient) view(fn func(tx *bolt.Tx) error) error {
	db, err := c.open()
	if err != nil {
		return err
	}

	defer db.Close()

	return db.View(fn)
}

// Get returns the document stored under key.
func (c *BoltClient) Get(key string) ([]byte, error) {
	var value []byte

	err := c.view(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(documentsBucket))
		if b == nil {
			return ErrNotFound
		}

		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		// v is only valid for the life of the transaction
		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

// Put overwrites the document stored under key.
func (c *BoltClient) Put(key string, value []byte) error {
	return c.update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte(key), value)
	})
}

// Update reads the document stored under key, passes it to fn (nil when
// absent) and stores the result in the same transaction, so no other process
// can write in between. Nothing is stored when fn fails.
func (c *BoltClient) Update(key string, fn func(value []byte) ([]byte, error)) error {
	return c.update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		if err != nil {
			return err
		}

		value, err := fn(b.Get([]byte(key)))
		if err != nil {
			return err
		}

		return b.Put([]byte(key), value)
	})
}

// Close is a no-op: the database is never held open between operations.
func (c *BoltClient) Close() error {
	return nil
}
