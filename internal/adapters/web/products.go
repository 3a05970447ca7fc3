package web

import (
	"net/http"
	"strconv"

	"gst-invoicing/internal/app"
	"gst-invoicing/internal/core"

	"github.com/go-chi/chi/v5"
)

// listProducts handles GET /api/products.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// addProduct handles POST /api/products.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req app.AddProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.AddProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result)
}

// updateProduct handles PATCH /api/products/{id}: a partial update where
// absent fields keep their stored values.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "invalid product id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var patch core.ProductPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	result, err := h.svc.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
