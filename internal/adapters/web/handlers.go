package web

import (
	"net/http"

	"gst-invoicing/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler wires the chi router over the ApplicationService.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler creates the router with all routes. allowedOrigins is a
// comma-separated CORS allowlist; empty disables CORS entirely.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// Public
	r.Get("/api/health", h.health)
	r.Post("/api/auth/register", h.register)
	r.Post("/api/auth/login", h.login)

	// Everything else requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/products", h.listProducts)
		r.Post("/api/products", h.addProduct)
		r.Patch("/api/products/{id}", h.updateProduct)

		r.Post("/api/invoices", h.createInvoice)
		r.Get("/api/invoices", h.listInvoices)
		r.Get("/api/invoices/{id}", h.getInvoice)

		r.Get("/api/dashboard/sales", h.salesSummary)
		r.Get("/api/dashboard/top-products", h.topProducts)
	})

	return r
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}
