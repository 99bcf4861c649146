package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pedidos/internal/adapters/out/catalog"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetProduct(t *testing.T) {
	t.Run("should resolve existing product", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/productos/SKU-100", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"SKU-100","nombre":"Blue Hoodie","precio":62.75}}`))
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		got, err := client.GetProduct(t.Context(), "SKU-100")

		require.NoError(t, err)
		assert.Equal(t, "SKU-100", got.ID)
		assert.Equal(t, "Blue Hoodie", got.Name)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("62.75")))
	})

	t.Run("should fall back to id when name is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"SKU-100","precio":10}}`))
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		got, err := client.GetProduct(t.Context(), "SKU-100")

		require.NoError(t, err)
		assert.Equal(t, "SKU-100", got.Name)
	})

	t.Run("should report 404 as not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		_, err := client.GetProduct(t.Context(), "SKU-404")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report unsuccessful payload as not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		_, err := client.GetProduct(t.Context(), "SKU-100")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report server error as dependency failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		_, err := client.GetProduct(t.Context(), "SKU-100")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDependencyFailure)
	})

	t.Run("should report malformed body as dependency failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := catalog.NewClient(server.URL, time.Second)
		_, err := client.GetProduct(t.Context(), "SKU-100")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDependencyFailure)
	})

	t.Run("should report unreachable catalog as dependency failure", func(t *testing.T) {
		client := catalog.NewClient("http://127.0.0.1:1", time.Second)
		_, err := client.GetProduct(t.Context(), "SKU-100")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDependencyFailure)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		client := catalog.NewClient("http://localhost", time.Second)
		_, err := client.GetProduct(t.Context(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
