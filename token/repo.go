package token

import apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"

// StorageKey is the fixed name the session token is persisted under.
const StorageKey = "token"

var ErrNotFound = apperrors.ErrNotFound

// Repo is a durable key/value slot for client-side credentials.
// Get returns ErrNotFound for a missing key; Delete of a missing key is not an error.
type Repo interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
