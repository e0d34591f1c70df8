package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, resp)
}

// CreateStore handles POST /api/admin/stores
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create store")
		return
	}

	utils.ResponseCreated(w, resp)
}

// ListUsers handles GET /api/admin/users?search=&role=&sortBy=&order=
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := &request.ListUsersQuery{
		Search: query.Get("search"),
		Role:   query.Get("role"),
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
	}

	users, err := h.service.ListUsers(r.Context(), q)
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// ListStores handles GET /api/admin/stores?search=&sortBy=&order=
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := &request.ListStoresQuery{
		Search: query.Get("search"),
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
	}

	stores, err := h.service.ListStores(r.Context(), q)
	if err != nil {
		h.handleServiceError(w, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// handleServiceError translates service errors into HTTP responses
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
