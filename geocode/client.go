// Package geocode is a thin client for a Mapbox-style forward-geocoding API,
// used by the listing wizard's location autosuggest.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MinQueryLen mirrors the app's autosuggest behavior: queries shorter than
// this return no suggestions without a network call.
const MinQueryLen = 2

type Suggestion struct {
	Name      string   `json:"name"`
	PlaceName string   `json:"placeName"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	State     string   `json:"state,omitempty"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeFeature struct {
	Text      string    `json:"text"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
	Context   []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"context"`
}

type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

// Suggest returns place suggestions for a free-text query. The state name is
// extracted from the feature context when the provider includes one.
func (c *Client) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLen {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("access_token", c.token)
	q.Set("autocomplete", "true")
	q.Set("limit", "5")
	q.Set("country", "in")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding geocoder response: %w", err)
	}

	out := make([]Suggestion, 0, len(body.Features))
	for _, f := range body.Features {
		s := Suggestion{Name: f.Text, PlaceName: f.PlaceName}
		if len(f.Center) == 2 {
			lng, lat := f.Center[0], f.Center[1]
			s.Longitude = &lng
			s.Latitude = &lat
		}
		for _, entry := range f.Context {
			if strings.HasPrefix(entry.ID, "region") {
				s.State = entry.Text
				break
			}
		}
		out = append(out, s)
	}
	return out, nil
}
