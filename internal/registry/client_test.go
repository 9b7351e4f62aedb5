package registry_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctmis/ctgov-sync/internal/config"
	"github.com/ctmis/ctgov-sync/internal/httpclient"
	"github.com/ctmis/ctgov-sync/internal/registry"
)

func TestFetchPage(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("builds query and decodes studies", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/studies", r.URL.Path)

			q := r.URL.Query()
			assert.Equal(t,
				"(AREA[LeadSponsorClass] INDUSTRY) AND AREA[LastUpdatePostDate]RANGE[2024-01-15,MAX]",
				q.Get("query.term"))
			assert.Equal(t, "50", q.Get("pageSize"))
			assert.Contains(t, q.Get("fields"), "protocolSection.statusModule")
			assert.Empty(t, q.Get("pageToken"))

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{
				"studies": [
					{"protocolSection": {"identificationModule": {"nctId": "NCT00000001"}}},
					{"protocolSection": {"identificationModule": {"nctId": "NCT00000002"}}}
				],
				"nextPageToken": "abc123"
			}`))
		}))
		defer srv.Close()

		client := registry.NewClient(&config.RegistryConfig{Endpoint: srv.URL, PageSize: 50})
		page, err := client.FetchPage(context.Background(), since, "")
		require.NoError(t, err)

		require.Len(t, page.Studies, 2)
		require.NotNil(t, page.Studies[0].ProtocolSection)
		require.NotNil(t, page.Studies[0].ProtocolSection.IdentificationModule)
		assert.Equal(t, "NCT00000001", *page.Studies[0].ProtocolSection.IdentificationModule.NCTID)
		assert.Equal(t, "abc123", page.NextPageToken)
	})

	t.Run("forwards page token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "abc123", r.URL.Query().Get("pageToken"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"studies": []}`))
		}))
		defer srv.Close()

		client := registry.NewClient(&config.RegistryConfig{Endpoint: srv.URL})
		page, err := client.FetchPage(context.Background(), since, "abc123")
		require.NoError(t, err)
		assert.Empty(t, page.Studies)
		assert.Empty(t, page.NextPageToken)
	})

	t.Run("non-200 status is terminal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := registry.NewClient(&config.RegistryConfig{Endpoint: srv.URL})
		_, err := client.FetchPage(context.Background(), since, "")
		require.Error(t, err)

		var httpErr *httpclient.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	})

	t.Run("malformed payload is terminal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"studies": [`))
		}))
		defer srv.Close()

		client := registry.NewClient(&config.RegistryConfig{Endpoint: srv.URL})
		_, err := client.FetchPage(context.Background(), since, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode studies page")
	})
}
