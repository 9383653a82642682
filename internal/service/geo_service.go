package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/roobux/backend/internal/models"
)

const defaultGeoBaseURL = "https://ipapi.co"

// GeoService resolves an IP to a coarse location. Lookups are best effort;
// callers tolerate failure.
type GeoService interface {
	Lookup(ip string) (*models.UserInfo, error)
}

type ipapiGeoService struct {
	client  *http.Client
	baseURL string
}

func NewGeoService() GeoService {
	return &ipapiGeoService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: defaultGeoBaseURL,
	}
}

// NewGeoServiceWithBaseURL exists for tests.
func NewGeoServiceWithBaseURL(baseURL string) GeoService {
	return &ipapiGeoService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
	}
}

func (s *ipapiGeoService) Lookup(ip string) (*models.UserInfo, error) {
	url := fmt.Sprintf("%s/%s/json/", s.baseURL, ip)
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup returned %d", resp.StatusCode)
	}

	var payload struct {
		IP          string `json:"ip"`
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	info := &models.UserInfo{IP: payload.IP, Country: payload.CountryName}
	if info.IP == "" {
		info.IP = ip
	}
	if info.Country == "" {
		info.Country = "N/A"
	}
	return info, nil
}
