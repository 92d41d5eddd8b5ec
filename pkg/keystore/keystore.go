// Package keystore defines the durable medium behind the storefront state:
// a small set of independently keyed JSON documents.
package keystore

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

//go:generate mockgen -source=keystore.go -destination=mocks/mock.go -package=mockkeystore
type Store interface {
	// Get returns the raw document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// SetAll replaces the documents for every key in entries in one write.
	// Keys absent from entries are left untouched.
	SetAll(ctx context.Context, entries map[string][]byte) error
}
