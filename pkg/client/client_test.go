package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/blog", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Article{
			{ID: "id-2", Title: "Newer", PublishedDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "id-1", Title: "Older", PublishedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		})
	})
	mux.HandleFunc("GET /api/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "id-1" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"code": "NOT_FOUND", "message": "article not found"},
			})
			return
		}
		json.NewEncoder(w).Encode(Article{ID: "id-1", Title: "Older"})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		var form ContactForm
		json.NewDecoder(r.Body).Decode(&form)
		if form.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"code": "VALIDATION_ERROR", "message": "email is required"},
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Ack{ID: "contact-id", CreatedAt: time.Now().UTC()})
	})
	mux.HandleFunc("POST /api/appointments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Ack{ID: "appt-id", CreatedAt: time.Now().UTC()})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, srv.Client())
}

func TestClient_ListArticles(t *testing.T) {
	_, c := newTestServer(t)

	articles, err := c.ListArticles(context.Background())

	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "id-2", articles[0].ID)
}

func TestClient_GetArticle(t *testing.T) {
	_, c := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		a, err := c.GetArticle(context.Background(), "id-1")
		require.NoError(t, err)
		assert.Equal(t, "id-1", a.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		a, err := c.GetArticle(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, a)
	})
}

func TestClient_SubmitContact(t *testing.T) {
	_, c := newTestServer(t)

	t.Run("accepted", func(t *testing.T) {
		ack, err := c.SubmitContact(context.Background(), ContactForm{
			Name: "A", Email: "a@x.com", Message: "hi",
		})
		require.NoError(t, err)
		assert.Equal(t, "contact-id", ack.ID)
	})

	t.Run("rejected", func(t *testing.T) {
		ack, err := c.SubmitContact(context.Background(), ContactForm{Name: "A", Message: "hi"})
		assert.Nil(t, ack)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	})
}

func TestClient_SubmitAppointment(t *testing.T) {
	_, c := newTestServer(t)

	ack, err := c.SubmitAppointment(context.Background(), AppointmentForm{
		Name: "A", Email: "a@x.com", Phone: "123", Date: "2025-01-01", Time: "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "appt-id", ack.ID)
}

func TestPageData(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := NewPageData[[]Article]()
		assert.Equal(t, FetchLoading, p.State())

		p.Load(context.Background(), func(context.Context) ([]Article, error) {
			return []Article{{ID: "id-1"}}, nil
		})

		assert.Equal(t, FetchSuccess, p.State())
		data, err := p.Data()
		assert.NoError(t, err)
		assert.Len(t, data, 1)
	})

	t.Run("error sticks without retry", func(t *testing.T) {
		p := NewPageData[*Article]()
		calls := 0
		p.Load(context.Background(), func(context.Context) (*Article, error) {
			calls++
			return nil, ErrNotFound
		})

		assert.Equal(t, FetchError, p.State())
		_, err := p.Data()
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, calls)
	})
}
