package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReturnsFirstMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "milano duomo", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`[{"lat":"45.4642","lon":"9.1900"}]`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	point, err := client.Resolve(context.Background(), "milano duomo")
	require.NoError(t, err)
	assert.InDelta(t, 45.4642, point.Lat, 1e-9)
	assert.InDelta(t, 9.1900, point.Lng, 1e-9)
}

func TestResolveNoMatchIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	_, err := client.Resolve(context.Background(), "nowhere in particular")
	assert.Error(t, err)
}

func TestResolveServerFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	_, err := client.Resolve(context.Background(), "anywhere")
	assert.Error(t, err)
}
