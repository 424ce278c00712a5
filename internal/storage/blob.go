// Package storage keeps uploaded files behind a small blob interface.
package storage

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Get for unknown keys
var ErrNotFound = errors.New("blob not found")

// BlobStore persists uploaded files by key
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
