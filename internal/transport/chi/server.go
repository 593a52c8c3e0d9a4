package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stitchline/storefront/internal/domain"
	adminuc "github.com/stitchline/storefront/internal/usecase/admin"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
	healthuc "github.com/stitchline/storefront/internal/usecase/health"
	orderuc "github.com/stitchline/storefront/internal/usecase/order"
	recommenduc "github.com/stitchline/storefront/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the storefront API over chi.
type Server struct {
	catalog       *cataloguc.Service
	orders        *orderuc.Service
	recommend     *recommenduc.Service
	admin         *adminuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	orders *orderuc.Service,
	recommend *recommenduc.Service,
	admin *adminuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:   catalog,
		orders:    orders,
		recommend: recommend,
		admin:     admin,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, codeProductNotFound),
		sentinelHandler(domain.ErrOrderNotFound, http.StatusNotFound, codeOrderNotFound),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidStatus, http.StatusBadRequest, codeInvalidStatus),
		sentinelHandler(domain.ErrOutOfStock, http.StatusConflict, codeOutOfStock),
	}
	return s
}

// Register mounts all routes. adminOnly gates back-office routes.
func (s *Server) Register(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.ListProducts)
		r.Get("/products/{id}", s.GetProduct)
		r.Get("/products/{id}/recommendations", s.GetRecommendations)
		r.Get("/products/{id}/also-bought", s.GetAlsoBought)

		r.Post("/orders", s.CreateOrder)
		r.Get("/orders/my", s.ListMyOrders)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/products", s.CreateProduct)
			r.Put("/products/{id}", s.UpdateProduct)
			r.Delete("/products/{id}", s.DeleteProduct)
			r.Get("/orders", s.ListOrders)
			r.Patch("/orders/{id}/status", s.UpdateOrderStatus)
			r.Get("/admin/stats", s.AdminStats)
		})
	})
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 0)
	category := r.URL.Query().Get("category")

	products, total, err := s.catalog.List(r.Context(), category, offset, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]productResponse, len(products))
	for i := range products {
		items[i] = productToAPI(&products[i])
	}
	writeJSON(w, http.StatusOK, productListResponse{Items: items, Total: total})
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToAPI(&p))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.catalog.Create(r.Context(), req.toDraft())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/products/"+p.ID())
	writeJSON(w, http.StatusCreated, productToAPI(&p))
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.catalog.Update(r.Context(), chi.URLParam(r, "id"), req.toDraft())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToAPI(&p))
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRecommendations handles GET /api/v1/products/{id}/recommendations.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := s.recommend.Related(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]recommendationResponse, len(recs))
	for i := range recs {
		items[i] = recommendationToAPI(&recs[i])
	}
	writeJSON(w, http.StatusOK, items)
}

// GetAlsoBought handles GET /api/v1/products/{id}/also-bought.
func (s *Server) GetAlsoBought(w http.ResponseWriter, r *http.Request) {
	products, err := s.recommend.AlsoBought(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]productResponse, len(products))
	for i := range products {
		items[i] = productToAPI(&products[i])
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "X-User-ID header is required")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	lines := make([]orderuc.Line, len(req.Items))
	for i, it := range req.Items {
		lines[i] = orderuc.Line{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		}
	}

	o, err := s.orders.Create(r.Context(), userID, lines, req.Shipping.toAddress(), req.PaymentMethod)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/orders/"+o.ID())
	writeJSON(w, http.StatusCreated, orderToAPI(&o))
}

// ListMyOrders handles GET /api/v1/orders/my.
func (s *Server) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "X-User-ID header is required")
		return
	}

	orders, err := s.orders.ListByUser(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersToAPI(orders))
}

// ListOrders handles GET /api/v1/orders (admin).
func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListAll(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersToAPI(orders))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status (admin).
func (s *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	o, err := s.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToAPI(&o))
}

// AdminStats handles GET /api/v1/admin/stats.
func (s *Server) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.admin.Stats(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statsToAPI(stats))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProductNotFound,
		domain.ErrOrderNotFound,
		domain.ErrValidation,
		domain.ErrInvalidStatus,
		domain.ErrOutOfStock,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
