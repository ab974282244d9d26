package filerepo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jrsteele09/ayursetu-client/token"
)

var _ token.Repo = (*FileTokenRepo)(nil)

// FileTokenRepo keeps the key/value slots in a single JSON document so the
// session survives process restarts.
type FileTokenRepo struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

func NewFileTokenRepo(path string) (*FileTokenRepo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("token store file path is required")
	}

	r := &FileTokenRepo{
		path:   path,
		values: make(map[string]string),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileTokenRepo) Get(key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", token.ErrNotFound
	}
	return v, nil
}

func (r *FileTokenRepo) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return r.persistLocked()
}

func (r *FileTokenRepo) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.values[key]; !ok {
		return nil
	}
	delete(r.values, key)
	return r.persistLocked()
}

func (r *FileTokenRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read token store file: %w", err)
	}
	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, &r.values); err != nil {
		return fmt.Errorf("decode token store file: %w", err)
	}
	if r.values == nil {
		r.values = make(map[string]string)
	}
	return nil
}

func (r *FileTokenRepo) persistLocked() error {
	b, err := json.MarshalIndent(r.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token store file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("mkdir token store dir: %w", err)
	}
	// Credentials, so owner only.
	if err := os.WriteFile(r.path, b, 0o600); err != nil {
		return fmt.Errorf("write token store file: %w", err)
	}
	return nil
}
