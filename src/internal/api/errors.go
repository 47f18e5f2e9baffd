package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
	"github.com/lojadigital/produtos/src/internal/hashing"
	"github.com/lojadigital/produtos/src/internal/log"
	"github.com/lojadigital/produtos/src/internal/products"
)

const (
	msgNotFound   = "Produto não encontrado"
	msgBadRequest = "Pedido inválido"
	msgConflict   = "Já existe um produto com esse id"
	msgInternal   = "Erro interno do servidor"
	msgDeleted    = "Produto eliminado com sucesso"
	msgTooLarge   = "Pedido demasiado grande"
)

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, message string, details any) {
	writeJSON(w, statusCode, ErrorResponse{Error: message, Details: details})
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, msgNotFound, nil)
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, details any) {
	WriteError(w, http.StatusBadRequest, msgBadRequest, details)
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, msgInternal, nil)
}

// writeStoreError translates a coded error into its HTTP reply.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, msgTooLarge, nil)
		return
	}

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound:
		WriteNotFound(w)
	case apperrors.ErrCodeBadRequest:
		var verrs products.ValidationErrors
		if errors.As(err, &verrs) {
			WriteInvalidRequest(w, verrs)
			return
		}
		WriteInvalidRequest(w, badRequestDetail(err))
	case apperrors.ErrCodeConflict:
		WriteError(w, http.StatusConflict, msgConflict, nil)
	default:
		log.Errorf("[%s] %s %s: %v", RequestIDFrom(r.Context()), r.Method, r.URL.Path, err)
		WriteInternalError(w)
	}
}

func badRequestDetail(err error) string {
	var de *apperrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeJSONWithETag writes a 200 response tagged with a weak ETag of the body,
// or 304 when the client already holds that version.
func writeJSONWithETag(w http.ResponseWriter, r *http.Request, data any) {
	var buf bytes.Buffer
	proxy := hashing.NewMD5WriterProxy(&buf)
	if err := json.NewEncoder(proxy).Encode(data); err != nil {
		log.Errorf("[%s] Failed to encode response: %v", RequestIDFrom(r.Context()), err)
		WriteInternalError(w)
		return
	}

	etag := hashing.WeakETag(proxy)
	w.Header().Set("ETag", etag)

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// etagMatches applies the weak comparison If-None-Match calls for.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
