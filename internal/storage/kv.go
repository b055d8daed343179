// Package storage provides the named-blob persistence contract the rest
// of the app saves through. Callers treat values as opaque bytes; a
// missing key is reported with ErrNotFound and is never fatal upstream.
package storage

import "errors"

var ErrNotFound = errors.New("key not found")

type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
