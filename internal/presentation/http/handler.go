package httppresentation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	appAuth "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/auth"
	appCatalog "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/catalog"
	appLoyalty "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/loyalty"
	appOrder "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/order"
	appPayment "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/payment"
	appStock "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/stock"
	domainCatalog "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/catalog"
	domainLocation "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/location"
	domainOrder "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	domainPayment "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/payment"
	domainStock "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
	domainUser "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/user"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const componentHTTPHandler = "http_server"

type Handler struct {
	authService    *appAuth.Service
	catalogService *appCatalog.Service
	stockService   *appStock.Service
	orderService   *appOrder.Service
	paymentService *appPayment.Service
	loyaltyService *appLoyalty.Service

	log observability.Logger
	tel observability.Telemetry
}

func NewHandler(
	authSvc *appAuth.Service,
	catalogSvc *appCatalog.Service,
	stockSvc *appStock.Service,
	orderSvc *appOrder.Service,
	paymentSvc *appPayment.Service,
	loyaltySvc *appLoyalty.Service,
	tel observability.Telemetry,
) *Handler {
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Handler{
		authService:    authSvc,
		catalogService: catalogSvc,
		stockService:   stockSvc,
		orderService:   orderSvc,
		paymentService: paymentSvc,
		loyaltyService: loyaltySvc,
		log:            tel.Logger().With(observability.F("component", componentHTTPHandler)),
		tel:            tel,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(ObservabilityMiddleware(h.log, h.tel))

	r.Post("/auth/login", h.handleLogin)

	r.Get("/products", h.handleListProducts)
	r.Get("/products/name/{name}", h.handleProductsByName)
	r.Get("/products/category/{category}", h.handleProductsByCategory)
	r.Get("/products/category/{category}/id/{id}", h.handleProductInCategory)
	r.Get("/products/recommendations/{id}", h.handleRecommendations)

	r.Get("/stock", h.handleListStock)
	r.Get("/stock/{id}", h.handleStockEntry)
	r.Get("/stock/{id}/quantity", h.handleStockEntry)

	r.Get("/locations", h.handleListLocations)
	r.Get("/locations/{id}", h.handleLocation)
	r.Get("/locations/{id}/stock", h.handleLocationStock)
	r.Get("/locations/{id}/stock/{product_id}", h.handleLocationStockEntry)
	r.Get("/locations/{id}/stock/{product_id}/quantity", h.handleLocationStockEntry)

	r.Post("/orders/create", h.handleCreateOrder)
	r.Get("/orders", h.handleListOrders)
	r.Post("/payments/process", h.handleProcessPayment)

	r.Get("/loyalty/{user_id}", h.handleLoyaltyPoints)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type loginRequest struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.authService.Login(r.Context(), req.Username, req.Password); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful"})
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleProductsByName(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleProductInCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	product, err := h.catalogService.InCategory(r.Context(), chi.URLParam(r, "category"), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	products, err := h.catalogService.Recommendations(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleListStock(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stockService.ListStock(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleStockEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.stockService.Entry(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.stockService.ListLocations(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (h *Handler) handleLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	loc, err := h.stockService.Location(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) handleLocationStock(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	entries, err := h.stockService.LocationStock(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleLocationStockEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	productID, ok := intParam(w, r, "product_id")
	if !ok {
		return
	}
	entry, err := h.stockService.LocationEntry(r.Context(), id, productID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type createOrderRequest struct {
	OrderID    int   `json:"order_id"`
	UserID     int   `json:"user_id"`
	ProductIDs []int `json:"product_ids"`
	Quantities []int `json:"quantity"`
	LocationID int   `json:"location_id"`
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err := h.orderService.CreateOrder(r.Context(), appOrder.CreateOrderInput{
		OrderID:    req.OrderID,
		UserID:     req.UserID,
		ProductIDs: req.ProductIDs,
		Quantities: req.Quantities,
		LocationID: req.LocationID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Order created successfully"})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type processPaymentRequest struct {
	OrderID int    `json:"order_id"`
	Status  string `json:"status"`
}

func (h *Handler) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.paymentService.Process(r.Context(), req.OrderID, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Payment processed"})
}

func (h *Handler) handleLoyaltyPoints(w http.ResponseWriter, r *http.Request) {
	userID, ok := intParam(w, r, "user_id")
	if !ok {
		return
	}
	points, err := h.loyaltyService.Points(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

type messageResponse struct {
	Message string `json:"message"`
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return v, true
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainOrder.ErrNotFound),
		errors.Is(err, domainCatalog.ErrNotFound),
		errors.Is(err, domainLocation.ErrNotFound),
		errors.Is(err, domainStock.ErrNotFound),
		errors.Is(err, domainPayment.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domainUser.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domainPayment.ErrAlreadyPaid):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, domainOrder.ErrNoLines),
		errors.Is(err, domainOrder.ErrLineMismatch),
		errors.Is(err, domainOrder.ErrInvalidQuantity),
		errors.Is(err, domainStock.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
