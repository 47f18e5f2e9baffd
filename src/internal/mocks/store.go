// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
package mocks

import (
	"sync"

	"github.com/lojadigital/produtos/src/internal/products"
)

// MockProductStore is an in-memory implementation of domain.ProductStore.
//
// Each method calls the matching function field when it is set. Otherwise the
// collection held in memory is used, so a zero MockProductStore behaves like
// an empty data file.
//
// Example usage:
//
//	store := &mocks.MockProductStore{
//	    SaveFunc: func(products.Collection) error {
//	        return errors.New("disk full")
//	    },
//	}
type MockProductStore struct {
	// PathFunc is called by Path if not nil
	PathFunc func() string

	// LoadFunc is called by Load if not nil
	LoadFunc func() (products.Collection, error)

	// SaveFunc is called by Save if not nil
	SaveFunc func(c products.Collection) error

	mu        sync.Mutex
	data      products.Collection
	saveCalls int
}

// NewMockProductStore returns a mock holding a copy of c.
func NewMockProductStore(c products.Collection) *MockProductStore {
	return &MockProductStore{data: append(products.Collection{}, c...)}
}

// Path returns "memory" unless PathFunc is set.
func (m *MockProductStore) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "memory"
}

// Load returns a copy of the in-memory collection.
func (m *MockProductStore) Load() (products.Collection, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(products.Collection{}, m.data...), nil
}

// Save replaces the in-memory collection.
func (m *MockProductStore) Save(c products.Collection) error {
	m.mu.Lock()
	m.saveCalls++
	m.mu.Unlock()

	if m.SaveFunc != nil {
		return m.SaveFunc(c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(products.Collection{}, c...)
	return nil
}

// Modify loads, applies fn and saves through Load and Save.
func (m *MockProductStore) Modify(fn func(c *products.Collection) error) error {
	c, err := m.Load()
	if err != nil {
		return err
	}
	if err := fn(&c); err != nil {
		return err
	}
	return m.Save(c)
}

// SaveCalls returns how many times Save was called.
func (m *MockProductStore) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}
