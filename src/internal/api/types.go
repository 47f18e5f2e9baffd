package api

import (
	"net/http"

	"github.com/lojadigital/produtos/src/internal/products"
)

// Store is the persistence the handlers need.
type Store interface {
	Load() (products.Collection, error)
	Modify(fn func(c *products.Collection) error) error
}

// Dependencies wires the router.
type Dependencies struct {
	Store  Store
	Policy products.Policy
	// Frontend serves every request that matches no API route.
	Frontend http.Handler
	// CORS enables cross-origin headers and preflight handling.
	CORS bool
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"erro"`
	Details any    `json:"detalhes,omitempty"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"mensagem"`
}
