package config

import "strings"

const (
	tokenStoreVar     = "TOKEN_STORE"
	tokenStorePathVar = "TOKEN_STORE_PATH"
)

type StoreKind string

const (
	StoreFile   StoreKind = "file"
	StoreSQLite StoreKind = "sqlite"
	StoreMemory StoreKind = "memory"
)

type StoreConfig interface {
	GetTokenStore() StoreKind
	GetTokenStorePath() string
}

type Store struct{}

var _ StoreConfig = Store{}

// GetTokenStore falls back to the file store for unknown values.
func (Store) GetTokenStore() StoreKind {
	switch kind := StoreKind(strings.ToLower(GetEnv(tokenStoreVar, string(StoreFile)))); kind {
	case StoreSQLite, StoreMemory:
		return kind
	default:
		return StoreFile
	}
}

func (s Store) GetTokenStorePath() string {
	if s.GetTokenStore() == StoreSQLite {
		return GetEnv(tokenStorePathVar, "./data/session.db")
	}
	return GetEnv(tokenStorePathVar, "./data/session.json")
}
