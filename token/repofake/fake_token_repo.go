package tokenfakerepo

import (
	"sync"

	"github.com/jrsteele09/ayursetu-client/token"
)

var _ token.Repo = (*FakeTokenRepo)(nil)

type FakeTokenRepo struct {
	values map[string]string
	lock   sync.RWMutex
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{
		values: make(map[string]string),
	}
}

func (tr *FakeTokenRepo) Get(key string) (string, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	v, ok := tr.values[key]
	if !ok {
		return "", token.ErrNotFound
	}
	return v, nil
}

func (tr *FakeTokenRepo) Set(key, value string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.values[key] = value
	return nil
}

func (tr *FakeTokenRepo) Delete(key string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	delete(tr.values, key)
	return nil
}

// Has reports whether key currently holds a value.
func (tr *FakeTokenRepo) Has(key string) bool {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	_, ok := tr.values[key]
	return ok
}
