package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studydeck/backend/internal/auth/middleware"
	"github.com/studydeck/backend/internal/models"
	"go.uber.org/zap"
)

// ReviewService defines methods for review submission business logic
type ReviewService interface {
	// SubmitReview applies a four-button rating (1=again, 2=hard, 3=good, 4=easy)
	// to a card and returns the updated schedule.
	//
	// An out-of-range rating or an unknown card produces an error.
	SubmitReview(ctx context.Context, userID, cardID, rating int) (*models.CardSchedule, error)
	// SubmitAnswer applies a binary quiz outcome to a card and returns the
	// updated schedule. Correct maps to "good", incorrect to "again".
	SubmitAnswer(ctx context.Context, userID, cardID int, correct bool) (*models.CardSchedule, error)
	// Suspend excludes a card from the user's due queue until resumed.
	Suspend(ctx context.Context, userID, cardID int) error
	// Resume puts a suspended card back into the user's due queue.
	Resume(ctx context.Context, userID, cardID int) error
	// GetHistory retrieves the user's most recent review log entries.
	GetHistory(ctx context.Context, userID int) ([]models.ReviewLog, error)
}

// ReviewQueueService defines methods for the due queue
type ReviewQueueService interface {
	// GetDueCards retrieves the user's due cards ordered earliest-due first,
	// optionally scoped to a deck.
	GetDueCards(ctx context.Context, userID int, deckID *int) ([]models.DueCard, error)
	// GetDueCount retrieves the number of cards currently due for the user,
	// consistent with GetDueCards.
	GetDueCount(ctx context.Context, userID int, deckID *int) (int, error)
}

// ReviewHandler handles review submission and the due queue
type ReviewHandler struct {
	BaseHandler
	service      ReviewService
	queueService ReviewQueueService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewService, queueService ReviewQueueService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		service:      service,
		queueService: queueService,
	}
}

// ReviewRequest represents a rating submission request
type ReviewRequest struct {
	Rating int `json:"rating"`
}

// AnswerRequest represents a quiz answer submission request
type AnswerRequest struct {
	Correct bool `json:"correct"`
}

// RegisterRoutes registers all review handler routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/reviews", func(r chi.Router) {
		// Apply auth middleware to all review routes
		r.Use(authMiddleware)
		r.Post("/{cardID}", h.SubmitReview)
		r.Post("/{cardID}/answer", h.SubmitAnswer)
		r.Post("/{cardID}/suspend", h.SuspendCard)
		r.Post("/{cardID}/resume", h.ResumeCard)
		r.Get("/due", h.GetDueCards)
		r.Get("/due/count", h.GetDueCount)
		r.Get("/history", h.GetHistory)
	})
}

// userIDFromContext extracts the authenticated userID, with a plain context
// value fallback for tests
func (h *ReviewHandler) userIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		if ctxUserID, ok := ctx.Value("userID").(int); ok {
			return ctxUserID, true
		}
		return 0, false
	}
	return userID, true
}

// cardIDFromRequest parses the cardID path parameter
func cardIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "cardID"))
}

// deckIDFromQuery parses the optional deckId query parameter
func deckIDFromQuery(r *http.Request) (*int, error) {
	deckIDStr := r.URL.Query().Get("deckId")
	if deckIDStr == "" {
		return nil, nil
	}
	deckID, err := strconv.Atoi(deckIDStr)
	if err != nil {
		return nil, err
	}
	return &deckID, nil
}

// SubmitReview handles POST /api/v1/reviews/{cardID}
// @Summary Submit a review rating
// @Description Apply a recall-quality rating (1=again, 2=hard, 3=good, 4=easy) to a card and get the updated schedule. Requires authentication.
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Param review body ReviewRequest true "Review rating"
// @Success 200 {object} models.CardSchedule "Updated card schedule"
// @Failure 400 {object} map[string]string "Bad request - invalid request body, card ID or rating"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 404 {object} map[string]string "Not found - card does not exist"
// @Failure 500 {object} map[string]string "Internal server error - failed to persist the review"
// @Router /api/v1/reviews/{cardID} [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, err := cardIDFromRequest(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	schedule, err := h.service.SubmitReview(r.Context(), userID, cardID, req.Rating)
	if err != nil {
		h.Logger.Error("failed to submit review", zap.Error(err))
		h.RespondError(w, statusForReviewError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, schedule)
}

// SubmitAnswer handles POST /api/v1/reviews/{cardID}/answer
// @Summary Submit a quiz answer
// @Description Apply a binary quiz outcome to a card; correct schedules like "good", incorrect like "again". Requires authentication.
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Param answer body AnswerRequest true "Quiz answer outcome"
// @Success 200 {object} models.CardSchedule "Updated card schedule"
// @Failure 400 {object} map[string]string "Bad request - invalid request body or card ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 404 {object} map[string]string "Not found - card does not exist"
// @Failure 500 {object} map[string]string "Internal server error - failed to persist the review"
// @Router /api/v1/reviews/{cardID}/answer [post]
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, err := cardIDFromRequest(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	schedule, err := h.service.SubmitAnswer(r.Context(), userID, cardID, req.Correct)
	if err != nil {
		h.Logger.Error("failed to submit answer", zap.Error(err))
		h.RespondError(w, statusForReviewError(err), err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, schedule)
}

// SuspendCard handles POST /api/v1/reviews/{cardID}/suspend
// @Summary Suspend a card
// @Description Exclude a card from the due queue until it is resumed. Requires authentication.
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 200 {object} map[string]string "Card suspended"
// @Failure 400 {object} map[string]string "Bad request - invalid card ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 404 {object} map[string]string "Not found - no schedule exists for the card"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/reviews/{cardID}/suspend [post]
func (h *ReviewHandler) SuspendCard(w http.ResponseWriter, r *http.Request) {
	h.setSuspended(w, r, true)
}

// ResumeCard handles POST /api/v1/reviews/{cardID}/resume
// @Summary Resume a suspended card
// @Description Put a suspended card back into the due queue. Requires authentication.
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 200 {object} map[string]string "Card resumed"
// @Failure 400 {object} map[string]string "Bad request - invalid card ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 404 {object} map[string]string "Not found - no schedule exists for the card"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/reviews/{cardID}/resume [post]
func (h *ReviewHandler) ResumeCard(w http.ResponseWriter, r *http.Request) {
	h.setSuspended(w, r, false)
}

func (h *ReviewHandler) setSuspended(w http.ResponseWriter, r *http.Request, suspended bool) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, err := cardIDFromRequest(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	if suspended {
		err = h.service.Suspend(r.Context(), userID, cardID)
	} else {
		err = h.service.Resume(r.Context(), userID, cardID)
	}
	if err != nil {
		h.Logger.Error("failed to update suspended flag", zap.Error(err))
		h.RespondError(w, statusForReviewError(err), err.Error())
		return
	}

	message := "card resumed"
	if suspended {
		message = "card suspended"
	}
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// GetDueCards handles GET /api/v1/reviews/due
// @Summary Get due cards
// @Description Get the authenticated user's due cards ordered earliest-due first, optionally scoped to a deck. Requires authentication.
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param deckId query int false "Deck ID filter"
// @Success 200 {array} models.DueCard "Due cards (empty array if nothing is due)"
// @Failure 400 {object} map[string]string "Bad request - invalid deck ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/reviews/due [get]
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, err := deckIDFromQuery(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	dueCards, err := h.queueService.GetDueCards(r.Context(), userID, deckID)
	if err != nil {
		h.Logger.Error("failed to get due cards", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, dueCards)
}

// GetDueCount handles GET /api/v1/reviews/due/count
// @Summary Get due card count
// @Description Get the number of cards currently due for the authenticated user, optionally scoped to a deck. Requires authentication.
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param deckId query int false "Deck ID filter"
// @Success 200 {object} map[string]int "Due count"
// @Failure 400 {object} map[string]string "Bad request - invalid deck ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/reviews/due/count [get]
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, err := deckIDFromQuery(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	count, err := h.queueService.GetDueCount(r.Context(), userID, deckID)
	if err != nil {
		h.Logger.Error("failed to get due count", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"count": count})
}

// GetHistory handles GET /api/v1/reviews/history
// @Summary Get review history
// @Description Get the authenticated user's most recent review log entries. Requires authentication.
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ReviewLog "Review log entries (empty array if no reviews yet)"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/reviews/history [get]
func (h *ReviewHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	logs, err := h.service.GetHistory(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get review history", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if logs == nil {
		logs = []models.ReviewLog{}
	}
	h.RespondJSON(w, http.StatusOK, logs)
}

// statusForReviewError maps known service errors to HTTP status codes
func statusForReviewError(err error) int {
	switch err.Error() {
	case "invalid rating: must be between 1 (again) and 4 (easy)":
		return http.StatusBadRequest
	case "card not found", "card schedule not found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
