package web

import "net/http"

// salesSummary handles GET /api/dashboard/sales.
func (h *Handler) salesSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetSalesSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// topProducts handles GET /api/dashboard/top-products.
func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetTopProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
