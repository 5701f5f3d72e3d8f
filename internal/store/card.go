package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/flashvault/flashvault/internal/domain"
)

// CardStore defines the interface for card data persistence.
//
// GetAllCards and UpdateScheduling together satisfy the repository contract
// of the study service; the remaining methods cover collection management.
type CardStore interface {
	// CreateCards saves the given cards to the store. Every card must be
	// valid according to domain validation rules; on the first invalid or
	// duplicate card nothing is written.
	CreateCards(ctx context.Context, cards []*domain.Card) error

	// GetCard retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// GetAllCards returns a snapshot of the full card collection in
	// insertion order. Mutating the returned slice does not affect the
	// store.
	GetAllCards(ctx context.Context) ([]domain.Card, error)

	// UpdateScheduling replaces a card's scheduling state as a unit.
	// Returns ErrCardNotFound if the card does not exist and
	// ErrInvalidEntity if the new state is internally inconsistent.
	UpdateScheduling(ctx context.Context, cardID uuid.UUID, scheduling domain.Scheduling) error

	// DeleteCard removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	DeleteCard(ctx context.Context, id uuid.UUID) error
}
