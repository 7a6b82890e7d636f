package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/studydeck/backend/internal/models"
)

// cardRepository implements data access for decks and cards
type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *sql.DB) *cardRepository {
	return &cardRepository{
		db: db,
	}
}

// GetDecks retrieves all decks with their card counts
func (r *cardRepository) GetDecks(ctx context.Context) ([]models.Deck, error) {
	query := `
		SELECT d.id, d.title, d.description, COUNT(c.id) AS card_count
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id, d.title, d.description
		ORDER BY d.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(&deck.ID, &deck.Title, &deck.Description, &deck.CardCount); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return decks, nil
}

// GetByDeckID retrieves all cards belonging to a deck
func (r *cardRepository) GetByDeckID(ctx context.Context, deckID int) ([]models.Card, error) {
	query := `
		SELECT id, deck_id, front, back
		FROM cards
		WHERE deck_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.DeckID, &card.Front, &card.Back); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}

// GetByID retrieves a card by its ID
func (r *cardRepository) GetByID(ctx context.Context, id int) (*models.Card, error) {
	query := `
		SELECT id, deck_id, front, back
		FROM cards
		WHERE id = ?
	`

	var card models.Card
	err := r.db.QueryRowContext(ctx, query, id).Scan(&card.ID, &card.DeckID, &card.Front, &card.Back)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("card not found")
		}
		return nil, fmt.Errorf("failed to query card: %w", err)
	}

	return &card, nil
}

// GetByIDs retrieves cards by their IDs, keyed by card ID
func (r *cardRepository) GetByIDs(ctx context.Context, ids []int) (map[int]models.Card, error) {
	if len(ids) == 0 {
		return map[int]models.Card{}, nil
	}

	// Prepare the query for IN clause.
	// Placeholders are transformed into "?, ?, ?" string for slice insertion.
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, deck_id, front, back
		FROM cards
		WHERE id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards by ids: %w", err)
	}
	defer rows.Close()

	cards := make(map[int]models.Card, len(ids))
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.DeckID, &card.Front, &card.Back); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards[card.ID] = card
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}
