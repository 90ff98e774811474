package paperless

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	t.Run("fetches and decodes a document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/documents/42/", r.URL.Path)
			assert.Equal(t, "Token secret", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 42, "title": "scan_0042.pdf", "content": "Invoice from Acme Corp dated 2024-03-01"}`))
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		doc, err := client.Document(context.Background(), "42")
		require.NoError(t, err)

		assert.Equal(t, 42, doc.ID)
		assert.Equal(t, "scan_0042.pdf", doc.Title)
		assert.Equal(t, "Invoice from Acme Corp dated 2024-03-01", doc.Content)
	})

	t.Run("trailing slash on base url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/documents/7/", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": 7}`))
		}))
		defer server.Close()

		client := New(server.URL+"/", "secret")
		_, err := client.Document(context.Background(), "7")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		_, err := client.Document(context.Background(), "999")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("authentication rejected", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			client := New(server.URL, "bad-token")
			_, err := client.Document(context.Background(), "42")

			assert.ErrorIs(t, err, ErrAuth)
			server.Close()
		}
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		_, err := client.Document(context.Background(), "42")

		require.ErrorIs(t, err, ErrTransport)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := New("http://127.0.0.1:1", "secret")
		_, err := client.Document(context.Background(), "42")

		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		_, err := client.Document(context.Background(), "42")

		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestUpdateTitle(t *testing.T) {
	t.Run("patches only the title", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/documents/42/", r.URL.Path)
			assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"title": "Acme Corp - March Invoice"}, body)
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		err := client.UpdateTitle(context.Background(), "42", "Acme Corp - March Invoice")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		err := client.UpdateTitle(context.Background(), "999", "T")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("authentication rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := New(server.URL, "bad-token")
		err := client.UpdateTitle(context.Background(), "42", "T")

		assert.ErrorIs(t, err, ErrAuth)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := New(server.URL, "secret")
		err := client.UpdateTitle(context.Background(), "42", "T")

		assert.ErrorIs(t, err, ErrTransport)
	})
}
