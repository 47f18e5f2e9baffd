// Package store persists the product collection as a single JSON file.
//
// The file always holds the whole collection under one key:
//
//	{ "produtos": [ { "id": 1, "nome": "Caneca", "preco": 5.5 } ] }
//
// Every Load reads the file again and every Save rewrites it completely;
// nothing is cached between calls.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
	"github.com/lojadigital/produtos/src/internal/log"
	"github.com/lojadigital/produtos/src/internal/products"
	"github.com/lojadigital/produtos/src/internal/utils"
)

// document is the on-disk layout.
type document struct {
	Products products.Collection `json:"produtos"`
}

// FileStore reads and writes the collection file. Modify serialises
// load-modify-save sequences within the process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the file at path. The file does not need to exist.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored collection. A missing file is an empty collection.
func (s *FileStore) Load() (products.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Data file %s not found, starting with an empty collection", s.path)
			return products.Collection{}, nil
		}
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to read %s", s.path), err)
	}

	return decode(data, s.path)
}

func decode(data []byte, path string) (products.Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, apperrors.NewCorruptDataError(fmt.Sprintf("%s does not contain a JSON object", path), nil)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, apperrors.NewCorruptDataError(fmt.Sprintf("failed to parse %s", path), err)
	}
	if doc.Products == nil {
		doc.Products = products.Collection{}
	}
	return doc.Products, nil
}

// Save replaces the file with c.
func (s *FileStore) Save(c products.Collection) error {
	if c == nil {
		c = products.Collection{}
	}

	data, err := json.MarshalIndent(document{Products: c}, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("failed to encode products", err)
	}

	if err := utils.EnsureParentDir(s.path); err != nil {
		return apperrors.NewIOError("failed to prepare data directory", err)
	}
	if err := utils.WriteFileAtomic(s.path, data, 0644); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to write %s", s.path), err)
	}

	log.Debugf("Saved %d products to %s", len(c), s.path)
	return nil
}

// Modify loads the collection, passes it to fn and saves the result, all
// while holding the store lock. If fn returns an error nothing is saved and
// the error is returned unchanged.
func (s *FileStore) Modify(fn func(c *products.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(&c); err != nil {
		return err
	}
	return s.Save(c)
}
