package kvstore

import (
	"bytes"
	"context"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("vaultnav")

// Bolt keeps every key in a single bucket of a bbolt file.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	return value, found, b.wrap(err)
}

func (b *Bolt) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.wrap(b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	}))
}

func (b *Bolt) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.wrap(b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	}))
}

func (b *Bolt) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys := []string{}
	err := b.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, b.wrap(err)
	}
	return keys, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) wrap(err error) error {
	if err == bolt.ErrDatabaseNotOpen {
		return ErrClosed
	}
	return err
}
