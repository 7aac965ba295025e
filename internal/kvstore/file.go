package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorruptDocument marks a backing document that exists but does not
// decode as a JSON object.
var ErrCorruptDocument = errors.New("kvstore: corrupt document")

// FileStore keeps every key in one JSON document on disk. Writes go to a
// temp file that is renamed over the target, so a crash never leaves a
// half-written document behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a store backed by the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path exposes the backing document path.
func (s *FileStore) Path() string {
	return s.path
}

// Get reads one key from the document.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

// SetMany rewrites the document with the entries applied.
func (s *FileStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readOrEmpty()
	if err != nil {
		return err
	}
	for k, v := range entries {
		doc[k] = string(v)
	}
	return s.write(doc)
}

// DeleteMany rewrites the document without the keys.
func (s *FileStore) DeleteMany(ctx context.Context, keys ...string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readOrEmpty()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(doc, k)
	}
	return s.write(doc)
}

// Close is a no-op; nothing is held open between calls.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	doc := map[string]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorruptDocument, s.path, err)
	}
	return doc, nil
}

// readOrEmpty starts from a blank document when the existing one is
// corrupt; the next write replaces it. Any other read failure is returned
// so a write never clobbers a document it could not see.
func (s *FileStore) readOrEmpty() (map[string]string, error) {
	doc, err := s.read()
	if errors.Is(err, ErrCorruptDocument) {
		return map[string]string{}, nil
	}
	return doc, err
}

func (s *FileStore) write(doc map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
