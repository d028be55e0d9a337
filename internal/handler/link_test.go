package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
)

func TestCreateLink_201(t *testing.T) {
	tripID := uuid.New()
	svc := &mockLinkServicer{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			assert.Equal(t, tripID, l.TripID)
			l.ID = uuid.New()
			return l, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/links", jsonBody(t, map[string]any{
		"title": "Airbnb",
		"url":   "https://airbnb.example.com/rooms/1",
	}))
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Services{Links: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.Link
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Airbnb", resp.Title)
	assert.Equal(t, "https://airbnb.example.com/rooms/1", resp.Url)
}

func TestCreateLink_400(t *testing.T) {
	svc := &mockLinkServicer{
		create: func(_ context.Context, _ domain.Link) (domain.Link, error) {
			return domain.Link{}, fmt.Errorf("%w: url must be an absolute http or https URL", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/links", jsonBody(t, map[string]any{
		"title": "Docs",
		"url":   "/relative",
	}))
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Services{Links: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "url must be an absolute http or https URL", decodeError(t, rec.Body).Message)
}

func TestGetLinks_200(t *testing.T) {
	svc := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) {
			return []domain.Link{
				{ID: uuid.New(), Title: "A", URL: "https://a.example.com"},
				{ID: uuid.New(), Title: "B", URL: "https://b.example.com"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/links", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Services{Links: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.LinksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Links, 2)
}

func TestGetLinks_404(t *testing.T) {
	svc := &mockLinkServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) { return nil, domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/links", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(handler.Services{Links: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
