package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoLookup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip": "8.8.8.8", "country_name": "United States"}`))
	}))
	defer ts.Close()

	svc := NewGeoServiceWithBaseURL(ts.URL)
	info, err := svc.Lookup("8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", info.IP)
	assert.Equal(t, "United States", info.Country)
}
