package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"impacttracker/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const charitiesPayload = `[
  {
    "id": "c1",
    "name": "Thames Food Bank",
    "latitude": 51.49,
    "longitude": -0.11,
    "address": "12 Kennington Road, SE1",
    "description": null,
    "created_at": "2024-03-01T10:00:00.123456+00:00",
    "stories": [
      {
        "id": "s1",
        "charity_id": "c1",
        "title": "Winter meals",
        "content": "Five hundred meals served.",
        "author": "Volunteer lead",
        "news_url": null,
        "created_at": "2024-03-02T10:00:00+00:00"
      }
    ]
  },
  {
    "id": "c2",
    "name": "Camden Shelter",
    "latitude": 51.54,
    "longitude": -0.14,
    "address": "3 Camden High St, NW1",
    "description": "Night shelter",
    "created_at": "2024-03-01T10:00:00+00:00"
  }
]`

func TestFetchCharities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/charities", r.URL.Path)
		assert.Equal(t, "*,stories(*)", r.URL.Query().Get("select"))
		assert.Equal(t, "latitude.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(charitiesPayload))
	}))
	defer srv.Close()

	client := NewSupabaseTables(srv.URL+"/", "anon-key", srv.Client())

	charities, err := client.FetchCharities(context.Background())
	require.NoError(t, err)
	require.Len(t, charities, 2)

	first := charities[0]
	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, "Thames Food Bank", first.Name)
	assert.Equal(t, 51.49, first.Latitude)
	assert.Equal(t, -0.11, first.Longitude)
	assert.Nil(t, first.Description)
	require.Len(t, first.Stories, 1)
	assert.Equal(t, "Winter meals", first.LeadStory().Title)
	assert.Equal(t, "Volunteer lead", *first.LeadStory().Author)
	assert.Nil(t, first.LeadStory().NewsURL)

	second := charities[1]
	require.NotNil(t, second.Description)
	assert.Equal(t, "Night shelter", *second.Description)
	assert.NotNil(t, second.Stories)
	assert.Empty(t, second.Stories)
}

func TestFetchCharitiesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewSupabaseTables(srv.URL, "bad-key", srv.Client())

	charities, err := client.FetchCharities(context.Background())
	assert.Nil(t, charities)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestFetchCharitiesDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	client := NewSupabaseTables(srv.URL, "anon-key", srv.Client())

	_, err := client.FetchCharities(context.Background())
	assert.ErrorContains(t, err, "failed to decode charities")
}

func TestSubmitSuggestion(t *testing.T) {
	var received []map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/charity_suggestions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewSupabaseTables(srv.URL, "anon-key", srv.Client())

	err := client.SubmitSuggestion(context.Background(), &types.CharitySuggestion{
		UserName:    "Jane",
		UserEmail:   "jane@example.com",
		CharityName: "Hackney Pantry",
		Reason:      "Feeds families every weekend",
	})
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, map[string]any{
		"user_name":    "Jane",
		"user_email":   "jane@example.com",
		"charity_name": "Hackney Pantry",
		"reason":       "Feeds families every weekend",
	}, received[0])
}

func TestSubmitSuggestionStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	}))
	defer srv.Close()

	client := NewSupabaseTables(srv.URL, "anon-key", srv.Client())

	err := client.SubmitSuggestion(context.Background(), &types.CharitySuggestion{UserEmail: "a@b"})
	assert.ErrorContains(t, err, "status 409")
}

func TestSubmitSuggestionTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewSupabaseTables(srv.URL, "anon-key", srv.Client())
	srv.Close()

	err := client.SubmitSuggestion(context.Background(), &types.CharitySuggestion{UserEmail: "a@b"})
	assert.ErrorContains(t, err, "failed to submit suggestion")
}
