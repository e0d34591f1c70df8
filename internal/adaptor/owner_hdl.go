package adaptor

import (
	"net/http"
	"strings"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log,
	}
}

// GetDashboard handles GET /api/owner/dashboard
func (h *OwnerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get owner dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}

// handleServiceError translates service errors into HTTP responses
func (h *OwnerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no store found"):
		h.log.Warn(operation+" failed - no store", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
