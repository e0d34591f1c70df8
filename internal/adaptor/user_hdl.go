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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// ListStores handles GET /api/user/stores?search=&sortBy=&order=
func (h *UserHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	q := &request.ListStoresQuery{
		Search: query.Get("search"),
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
	}

	stores, err := h.service.ListStores(r.Context(), userID, q)
	if err != nil {
		h.handleServiceError(w, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// SubmitRating handles POST /api/user/ratings
func (h *UserHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.SubmitRating(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit rating")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// handleServiceError translates service errors into HTTP responses
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "must be between"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
