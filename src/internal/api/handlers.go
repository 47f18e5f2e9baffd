package api

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
	"github.com/lojadigital/produtos/src/internal/products"
)

// MaxBodyBytes caps the size of a create or update body.
const MaxBodyBytes = 100 << 10

// Handler serves the product endpoints.
type Handler struct {
	store  Store
	policy products.Policy
}

// NewHandler creates a handler backed by store.
func NewHandler(store Store, policy products.Policy) *Handler {
	return &Handler{store: store, policy: policy}
}

// ListProducts returns every product in storage order.
// GET /api/produtos
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Load()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if c == nil {
		c = products.Collection{}
	}

	writeJSONWithETag(w, r, c)
}

// GetProduct returns the first product whose id matches the path parameter.
// GET /api/produtos/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Load()
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	i := c.Lookup(chi.URLParam(r, "id"))
	if i < 0 {
		WriteNotFound(w)
		return
	}

	writeJSONWithETag(w, r, c[i])
}

// CreateProduct appends a product built from the body.
// POST /api/produtos
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := h.decodeBody(w, r)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	var created products.Product
	err = h.store.Modify(func(c *products.Collection) error {
		p, err := h.policy.Create(c, body)
		created = p
		return err
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProduct merges the body onto an existing product.
// PUT /api/produtos/{id}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := h.decodeBody(w, r)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	rawID := chi.URLParam(r, "id")

	var updated products.Product
	err = h.store.Modify(func(c *products.Collection) error {
		i := c.Lookup(rawID)
		if i < 0 {
			return apperrors.NewNotFoundError("product " + rawID + " not found")
		}
		p, err := h.policy.Update(*c, i, body)
		updated = p
		return err
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProduct removes the first product whose id matches.
// DELETE /api/produtos/{id}
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	err := h.store.Modify(func(c *products.Collection) error {
		i := c.Lookup(rawID)
		if i < 0 {
			return apperrors.NewNotFoundError("product " + rawID + " not found")
		}
		c.Remove(i)
		return nil
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgDeleted})
}

// CheckHealth reports that the process is serving requests.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// decodeBody reads the request body as a JSON object of at most MaxBodyBytes.
// In lenient mode a body sent without a JSON content type is ignored, as if
// it were empty.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (products.Fields, error) {
	if h.policy.Mode != products.ModeStrict && !isJSON(r.Header.Get("Content-Type")) {
		return products.Fields{}, nil
	}
	return products.DecodeFields(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json"
}
