package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	defaultPriceAPIBase = "https://api.coingecko.com"
	priceTopic          = "prices"
)

// coinSymbols maps provider ids to the tickers the clients render.
var coinSymbols = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"litecoin": "LTC",
}

// PriceService polls spot quotes and fans them out. A failed refresh keeps
// the previous snapshot.
type PriceService interface {
	Refresh(ctx context.Context) error
	GetQuotes() []*models.PriceQuote
}

type priceService struct {
	priceRepo repository.PriceRepository
	hub       Broadcaster
	client    *http.Client
	baseURL   string
}

func NewPriceService(priceRepo repository.PriceRepository, hub Broadcaster) PriceService {
	return NewPriceServiceWithBaseURL(priceRepo, hub, defaultPriceAPIBase)
}

func NewPriceServiceWithBaseURL(priceRepo repository.PriceRepository, hub Broadcaster, baseURL string) PriceService {
	return &priceService{
		priceRepo: priceRepo,
		hub:       hub,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
	}
}

func (s *priceService) Refresh(ctx context.Context) error {
	url := s.baseURL + "/api/v3/simple/price?ids=bitcoin,ethereum,litecoin&vs_currencies=usd&include_24hr_change=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("price fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("price fetch failed: status %d", resp.StatusCode)
	}

	var payload map[string]struct {
		USD          float64 `json:"usd"`
		USD24hChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode price response: %w", err)
	}

	now := time.Now().UTC()
	for id, symbol := range coinSymbols {
		entry, ok := payload[id]
		if !ok {
			logrus.WithField("coin", id).Warn("coin missing from price response")
			continue
		}
		quote := &models.PriceQuote{
			Symbol:       symbol,
			PriceUSD:     entry.USD,
			Change24hPct: entry.USD24hChange,
			UpdatedAt:    now,
		}
		if err := s.priceRepo.SaveQuote(quote); err != nil {
			return err
		}
	}

	if s.hub != nil {
		s.hub.Broadcast(priceTopic, s.priceRepo.GetQuotes())
	}
	return nil
}

func (s *priceService) GetQuotes() []*models.PriceQuote {
	return s.priceRepo.GetQuotes()
}
