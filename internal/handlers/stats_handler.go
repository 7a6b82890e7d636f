package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studydeck/backend/internal/auth/middleware"
	"github.com/studydeck/backend/internal/models"
	"go.uber.org/zap"
)

// StatsService defines methods for user statistics business logic
type StatsService interface {
	// GetStats retrieves the user's review statistics; users who have never
	// reviewed get a zero-valued row.
	GetStats(ctx context.Context, userID int) (*models.UserStats, error)
}

// StatsHandler handles user statistics
type StatsHandler struct {
	BaseHandler
	service StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all stats handler routes
func (h *StatsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/stats", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetStats)
	})
}

// GetStats handles GET /api/v1/stats
// @Summary Get user statistics
// @Description Get the authenticated user's study streak and review totals. Requires authentication.
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserStats "User review statistics"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		// Fallback to context value for testing
		if ctxUserID, ok := r.Context().Value("userID").(int); ok {
			userID = ctxUserID
		} else {
			h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
			return
		}
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get user stats", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
