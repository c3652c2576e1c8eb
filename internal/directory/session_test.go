package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/query"
)

func pagedServer(t *testing.T, providers []models.Provider) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		start := (page - 1) * perPage
		end := start + perPage
		if start > len(providers) {
			start = len(providers)
		}
		if end > len(providers) {
			end = len(providers)
		}
		json.NewEncoder(w).Encode(query.Result{Providers: providers[start:end], Total: len(providers)})
	}))
}

func namedProviders(n int) []models.Provider {
	out := make([]models.Provider, n)
	for i := range out {
		out[i] = models.Provider{ID: strconv.Itoa(i), FirstName: "Provider", LastName: strconv.Itoa(i)}
	}
	return out
}

func TestSessionSetFiltersResetsToFirstPage(t *testing.T) {
	server := pagedServer(t, namedProviders(25))
	defer server.Close()

	s := NewSession(NewClient(server.URL, zerolog.Nop()), 9)
	ctx := context.Background()

	s.SetFilters(ctx, query.FilterSpec{})
	assert.Equal(t, 3, s.TotalPages())

	s.GoToPage(ctx, 3)
	assert.Equal(t, 3, s.Page())

	result := s.SetFilters(ctx, query.FilterSpec{Name: "provider"})
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 25, result.Total)
	assert.Len(t, result.Providers, 9)
}

func TestSessionGoToPageClamps(t *testing.T) {
	server := pagedServer(t, namedProviders(25))
	defer server.Close()

	s := NewSession(NewClient(server.URL, zerolog.Nop()), 9)
	ctx := context.Background()

	s.SetFilters(ctx, query.FilterSpec{})

	result := s.GoToPage(ctx, 99)
	assert.Equal(t, 3, s.Page())
	assert.Len(t, result.Providers, 7, "last page holds the remainder")

	s.GoToPage(ctx, -1)
	assert.Equal(t, 1, s.Page())
}

func TestSessionAbsorbsSearchFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := NewSession(NewClient(server.URL, zerolog.Nop()), 9)
	result := s.SetFilters(context.Background(), query.FilterSpec{})

	require.NotNil(t, result.Providers)
	assert.Empty(t, result.Providers)
	assert.Zero(t, result.Total)
	assert.Equal(t, 1, s.TotalPages())
}

func TestSessionDiscardsStaleResponse(t *testing.T) {
	slowArrived := make(chan struct{})
	releaseSlow := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "slow" {
			close(slowArrived)
			<-releaseSlow
		}
		json.NewEncoder(w).Encode(query.Result{
			Providers: []models.Provider{{ID: name, FirstName: name}},
			Total:     1,
		})
	}))
	defer server.Close()

	s := NewSession(NewClient(server.URL, zerolog.Nop()), 9)
	ctx := context.Background()

	done := make(chan query.Result, 1)
	go func() {
		done <- s.SetFilters(ctx, query.FilterSpec{Name: "slow"})
	}()

	<-slowArrived
	fast := s.SetFilters(ctx, query.FilterSpec{Name: "fast"})
	require.Len(t, fast.Providers, 1)
	assert.Equal(t, "fast", fast.Providers[0].FirstName)

	close(releaseSlow)
	stale := <-done

	// The earlier request's response arrived last; it must not overwrite the
	// newer result.
	require.Len(t, stale.Providers, 1)
	assert.Equal(t, "fast", stale.Providers[0].FirstName)
	assert.Equal(t, "fast", s.Current().Providers[0].FirstName)
}
