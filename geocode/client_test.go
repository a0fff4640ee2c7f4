package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"features": [
		{
			"text": "Indiranagar",
			"place_name": "Indiranagar, Bengaluru, Karnataka, India",
			"center": [77.6408, 12.9784],
			"context": [
				{"id": "place.123", "text": "Bengaluru"},
				{"id": "region.456", "text": "Karnataka"},
				{"id": "country.789", "text": "India"}
			]
		},
		{
			"text": "Indira Nagar",
			"place_name": "Indira Nagar, Lucknow, India",
			"center": [80.99, 26.87]
		}
	]
}`

func TestSuggestParsesFeatures(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Contains(t, r.URL.Path, "/geocoding/v5/mapbox.places/")
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	suggestions, err := client.Suggest(context.Background(), "indira")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, 1, requests)

	first := suggestions[0]
	assert.Equal(t, "Indiranagar", first.Name)
	assert.Equal(t, "Karnataka", first.State)
	require.NotNil(t, first.Latitude)
	assert.Equal(t, 12.9784, *first.Latitude)
	assert.Equal(t, 77.6408, *first.Longitude)

	// No region context, no state.
	assert.Empty(t, suggestions[1].State)
}

func TestShortQuerySkipsNetworkCall(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	for _, q := range []string{"", "a", "  a  "} {
		suggestions, err := client.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Nil(t, suggestions)
	}
	assert.Equal(t, 0, requests)
}

func TestSuggestSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.Suggest(context.Background(), "indira")
	assert.Error(t, err)
}
