package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studydeck/backend/internal/auth/middleware"
	"github.com/studydeck/backend/internal/models"
	"go.uber.org/zap"
)

// DeckService defines methods for deck browsing business logic
type DeckService interface {
	// GetDecks retrieves all decks with their card counts.
	GetDecks(ctx context.Context) ([]models.Deck, error)
	// GetDeckCards retrieves the cards of a deck for a user, creating default
	// schedule rows for cards the user has not seen before.
	GetDeckCards(ctx context.Context, userID, deckID int) ([]models.Card, error)
}

// DeckHandler handles deck browsing
type DeckHandler struct {
	BaseHandler
	service DeckService
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(service DeckService, logger *zap.Logger) *DeckHandler {
	return &DeckHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all deck handler routes
func (h *DeckHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/decks", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetDecks)
		r.Get("/{deckID}/cards", h.GetDeckCards)
	})
}

// GetDecks handles GET /api/v1/decks
// @Summary Get all decks
// @Description Get all decks with their card counts. Requires authentication.
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Deck "List of decks"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/decks [get]
func (h *DeckHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.service.GetDecks(r.Context())
	if err != nil {
		h.Logger.Error("failed to get decks", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if decks == nil {
		decks = []models.Deck{}
	}
	h.RespondJSON(w, http.StatusOK, decks)
}

// GetDeckCards handles GET /api/v1/decks/{deckID}/cards
// @Summary Get deck cards
// @Description Get all cards of a deck. Opening a deck makes its cards visible to the user, so new cards enter the due queue from here on. Requires authentication.
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {array} models.Card "Cards of the deck"
// @Failure 400 {object} map[string]string "Bad request - invalid deck ID"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required or invalid/expired token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/decks/{deckID}/cards [get]
func (h *DeckHandler) GetDeckCards(w http.ResponseWriter, r *http.Request) {
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

	deckID, err := strconv.Atoi(chi.URLParam(r, "deckID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	cards, err := h.service.GetDeckCards(r.Context(), userID, deckID)
	if err != nil {
		h.Logger.Error("failed to get deck cards", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if err.Error() == "invalid deck id" {
			statusCode = http.StatusBadRequest
		}
		h.RespondError(w, statusCode, err.Error())
		return
	}

	if cards == nil {
		cards = []models.Card{}
	}
	h.RespondJSON(w, http.StatusOK, cards)
}
