package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/flashvault/flashvault/internal/domain"
)

// Verify interface compliance at compile time
var _ CardStore = (*MemoryCardStore)(nil)

// MemoryCardStore is an in-memory CardStore. It preserves insertion order,
// which the session selector relies on for deterministic tie-breaking, and
// is safe for concurrent use.
type MemoryCardStore struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]domain.Card
	order []uuid.UUID
}

// NewMemoryCardStore creates an empty in-memory card store.
func NewMemoryCardStore() *MemoryCardStore {
	return &MemoryCardStore{
		cards: make(map[uuid.UUID]domain.Card),
	}
}

// CreateCards implements CardStore.CreateCards.
func (s *MemoryCardStore) CreateCards(_ context.Context, cards []*domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before writing anything.
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
		}
		if _, exists := s.cards[card.ID]; exists {
			return fmt.Errorf("%w: %s", ErrCardExists, card.ID)
		}
	}

	for _, card := range cards {
		s.cards[card.ID] = *card
		s.order = append(s.order, card.ID)
	}
	return nil
}

// GetCard implements CardStore.GetCard.
func (s *MemoryCardStore) GetCard(_ context.Context, id uuid.UUID) (*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return &card, nil
}

// GetAllCards implements CardStore.GetAllCards.
func (s *MemoryCardStore) GetAllCards(_ context.Context) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Card, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.cards[id])
	}
	return out, nil
}

// UpdateScheduling implements CardStore.UpdateScheduling.
func (s *MemoryCardStore) UpdateScheduling(
	_ context.Context,
	cardID uuid.UUID,
	scheduling domain.Scheduling,
) error {
	if err := scheduling.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return ErrCardNotFound
	}
	card.Scheduling = scheduling
	s.cards[cardID] = card
	return nil
}

// DeleteCard implements CardStore.DeleteCard.
func (s *MemoryCardStore) DeleteCard(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return ErrCardNotFound
	}
	delete(s.cards, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
