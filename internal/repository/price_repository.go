package repository

import (
	"sync"

	"github.com/roobux/backend/internal/models"
)

// PriceRepository keeps the latest third-party quotes in memory. Quotes are
// presentation data with no correctness obligation, so they are never
// persisted.
type PriceRepository interface {
	SaveQuote(quote *models.PriceQuote) error
	GetQuotes() []*models.PriceQuote
}

type InMemoryPriceRepository struct {
	quotes map[string]*models.PriceQuote
	mu     sync.RWMutex
}

func NewPriceRepository() PriceRepository {
	return &InMemoryPriceRepository{
		quotes: make(map[string]*models.PriceQuote),
	}
}

func (r *InMemoryPriceRepository) SaveQuote(quote *models.PriceQuote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[quote.Symbol] = quote
	return nil
}

func (r *InMemoryPriceRepository) GetQuotes() []*models.PriceQuote {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes := make([]*models.PriceQuote, 0, len(r.quotes))
	for _, quote := range r.quotes {
		quotes = append(quotes, quote)
	}
	return quotes
}
