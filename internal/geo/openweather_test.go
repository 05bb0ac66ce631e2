package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	handler http.Handler
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	m.handler.ServeHTTP(rec, req)
	return rec.Result(), nil
}

func TestOpenWeatherGeocoderSearch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/direct")
		assert.Equal(t, "berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Berlin","country":"DE","state":"Berlin","lat":52.52,"lon":13.405}]`))
	})

	g := NewOpenWeatherGeocoder(&http.Client{Transport: &mockRoundTripper{handler: handler}}, "test-key", 10, 5)
	locs, err := g.Search(context.Background(), "berlin", 5)
	require.NoError(t, err)
	require.Len(t, locs, 1)

	assert.Equal(t, "Berlin", locs[0].Name)
	assert.Equal(t, "DE", locs[0].Country)
	assert.Equal(t, "Europe", locs[0].Continent)
	assert.Equal(t, 52.52, locs[0].Lat)
}

func TestOpenWeatherGeocoderReverseNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/reverse")
		w.Write([]byte(`[]`))
	})

	g := NewOpenWeatherGeocoder(&http.Client{Transport: &mockRoundTripper{handler: handler}}, "test-key", 10, 5)
	_, err := g.Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenWeatherGeocoderRequiresKey(t *testing.T) {
	g := NewOpenWeatherGeocoder(&http.Client{}, "", 10, 5)
	_, err := g.Search(context.Background(), "paris", 5)
	assert.Error(t, err)
}
