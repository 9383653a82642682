package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roobux/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshParsesQuotes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"bitcoin": {"usd": 64000.5, "usd_24h_change": 2.1},
			"ethereum": {"usd": 3100.25, "usd_24h_change": -0.8},
			"litecoin": {"usd": 85.0, "usd_24h_change": 0.1}
		}`))
	}))
	defer ts.Close()

	repo := repository.NewPriceRepository()
	hub := &fakeBroadcaster{}
	svc := NewPriceServiceWithBaseURL(repo, hub, ts.URL)

	require.NoError(t, svc.Refresh(context.Background()))

	quotes := svc.GetQuotes()
	require.Len(t, quotes, 3)

	bySymbol := make(map[string]float64)
	for _, q := range quotes {
		bySymbol[q.Symbol] = q.PriceUSD
	}
	assert.Equal(t, 64000.5, bySymbol["BTC"])
	assert.Equal(t, 3100.25, bySymbol["ETH"])
	assert.Equal(t, 85.0, bySymbol["LTC"])

	require.Len(t, hub.topics, 1)
	assert.Equal(t, "prices", hub.topics[0])
}

func TestRefreshKeepsStaleQuotesOnFailure(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"bitcoin": {"usd": 60000, "usd_24h_change": 1}, "ethereum": {"usd": 3000, "usd_24h_change": 1}, "litecoin": {"usd": 80, "usd_24h_change": 1}}`))
	}))
	defer ts.Close()

	svc := NewPriceServiceWithBaseURL(repository.NewPriceRepository(), nil, ts.URL)

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Error(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.GetQuotes(), 3, "failed refresh keeps the previous snapshot")
}
