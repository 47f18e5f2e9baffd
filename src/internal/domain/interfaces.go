// Package domain wires the application components together.
package domain

import (
	"github.com/lojadigital/produtos/src/internal/products"
)

// ProductStore persists the product collection.
type ProductStore interface {
	// Path returns the location of the data file.
	Path() string

	// Load reads the whole collection. A missing file is an empty collection.
	Load() (products.Collection, error)

	// Save replaces the stored collection with c.
	Save(c products.Collection) error

	// Modify runs fn between a load and a save while holding the store lock.
	// The collection is not saved when fn returns an error.
	Modify(fn func(c *products.Collection) error) error
}
