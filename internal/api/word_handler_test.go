package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/api/shared"
	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/service"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordRouter mounts the word handler the way the server does, so path
// parameters resolve through chi.
func wordRouter(handler *WordHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/words", handler.SaveWord)
	r.Get("/api/words", handler.ListWords)
	r.Delete("/api/words/{id}", handler.DeleteWord)
	r.Post("/api/words/{id}/known", handler.MarkKnown)
	r.Get("/api/words/{id}/schedule", handler.Schedule)
	r.Get("/api/words/{id}/retention", handler.Retention)
	return r
}

// asUser attaches an authenticated user ID to the request context, the
// way the authentication middleware does.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestSaveWordHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("saves word and returns it", func(t *testing.T) {
		t.Parallel()

		saved := &domain.SavedWord{
			ID:               uuid.New(),
			UserID:           userID,
			Word:             "serendipity",
			LearningLanguage: "en",
			NativeLanguage:   "es",
			CreatedAt:        time.Now().UTC(),
		}

		var gotText string
		handler := NewWordHandler(&mockWordService{
			SaveWordFn: func(ctx context.Context, gotUser uuid.UUID, text string) (*domain.SavedWord, error) {
				assert.Equal(t, userID, gotUser)
				gotText = text
				return saved, nil
			},
		}, &mockReviewService{}, testLogger())

		body := bytes.NewReader([]byte(`{"word":"Serendipity"}`))
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", body), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Serendipity", gotText)

		var resp WordResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, saved.ID, resp.ID)
		assert.Equal(t, "serendipity", resp.Word)
	})

	t.Run("duplicate word returns conflict", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{Err: store.ErrWordExists}, &mockReviewService{}, testLogger())

		body := bytes.NewReader([]byte(`{"word":"serendipity"}`))
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", body), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("empty word is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{}, &mockReviewService{}, testLogger())

		body := bytes.NewReader([]byte(`{"word":""}`))
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/words", body), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{}, &mockReviewService{}, testLogger())

		body := bytes.NewReader([]byte(`{"word":"serendipity"}`))
		req := httptest.NewRequest(http.MethodPost, "/api/words", body)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListWordsHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	words := []domain.SavedWord{
		{ID: uuid.New(), UserID: userID, Word: "beta", LearningLanguage: "en", NativeLanguage: "es"},
		{ID: uuid.New(), UserID: userID, Word: "alpha", LearningLanguage: "en", NativeLanguage: "es"},
	}

	handler := NewWordHandler(&mockWordService{Words: words}, &mockReviewService{}, testLogger())

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/words", nil), userID)
	rr := httptest.NewRecorder()
	wordRouter(handler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []WordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "beta", resp[0].Word)
	assert.Equal(t, "alpha", resp[1].Word)
}

func TestDeleteWordHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()

	t.Run("deletes owned word", func(t *testing.T) {
		t.Parallel()

		var deleted uuid.UUID
		handler := NewWordHandler(&mockWordService{
			DeleteWordFn: func(ctx context.Context, gotUser, gotWord uuid.UUID) error {
				deleted = gotWord
				return nil
			},
		}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodDelete, "/api/words/"+wordID.String(), nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, wordID, deleted)
	})

	t.Run("another user's word is forbidden", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{Err: service.ErrNotOwned}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodDelete, "/api/words/"+wordID.String(), nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodDelete, "/api/words/not-a-uuid", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMarkKnownHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()

	t.Run("marks word as known", func(t *testing.T) {
		t.Parallel()

		var marked uuid.UUID
		handler := NewWordHandler(&mockWordService{
			MarkKnownFn: func(ctx context.Context, gotUser, gotWord uuid.UUID) error {
				marked = gotWord
				return nil
			},
		}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodPost, "/api/words/"+wordID.String()+"/known", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, wordID, marked)
	})

	t.Run("missing word returns not found", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{Err: store.ErrWordNotFound}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodPost, "/api/words/"+wordID.String()+"/known", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestScheduleHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()

	t.Run("returns projected dates honoring steps", func(t *testing.T) {
		t.Parallel()

		base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		dates := []time.Time{base.AddDate(0, 0, 1), base.AddDate(0, 0, 3), base.AddDate(0, 0, 8)}

		var gotSteps int
		handler := NewWordHandler(&mockWordService{}, &mockReviewService{
			ForecastFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, steps int) ([]time.Time, error) {
				gotSteps = steps
				return dates, nil
			},
		}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet,
			"/api/words/"+wordID.String()+"/schedule?steps=3", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, gotSteps)

		var resp ScheduleResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, wordID, resp.WordID)
		require.Len(t, resp.Dates, 3)
		assert.True(t, resp.Dates[0].Equal(dates[0]))
	})

	t.Run("missing steps uses the default", func(t *testing.T) {
		t.Parallel()

		var gotSteps int
		handler := NewWordHandler(&mockWordService{}, &mockReviewService{
			ForecastFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, steps int) ([]time.Time, error) {
				gotSteps = steps
				return nil, nil
			},
		}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet,
			"/api/words/"+wordID.String()+"/schedule", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, defaultScheduleSteps, gotSteps)
	})

	t.Run("steps out of range never reach the projection", func(t *testing.T) {
		t.Parallel()

		// An oversized projection pins a CPU for the whole request, so the
		// handler must reject it before the engine sees it.
		called := false
		handler := NewWordHandler(&mockWordService{}, &mockReviewService{
			ForecastFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, steps int) ([]time.Time, error) {
				called = true
				return nil, nil
			},
		}, testLogger())

		for _, steps := range []string{"0", "-1", "61", "2000000"} {
			req := asUser(httptest.NewRequest(http.MethodGet,
				"/api/words/"+wordID.String()+"/schedule?steps="+steps, nil), userID)
			rr := httptest.NewRecorder()
			wordRouter(handler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "steps=%s", steps)
		}
		assert.False(t, called, "out-of-range steps must not invoke the forecast")
	})

	t.Run("non-integer steps is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{}, &mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet,
			"/api/words/"+wordID.String()+"/schedule?steps=many", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRetentionHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()

	t.Run("returns retention samples", func(t *testing.T) {
		t.Parallel()

		base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		samples := []review.RetentionSample{
			{Date: base, Retention: 1.0},
			{Date: base.AddDate(0, 0, 1), Retention: 0.91},
		}

		var gotDays int
		handler := NewWordHandler(&mockWordService{}, &mockReviewService{
			RetentionCurveFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, days int) ([]review.RetentionSample, error) {
				gotDays = days
				return samples, nil
			},
		}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet,
			"/api/words/"+wordID.String()+"/retention?days=1", nil), userID)
		rr := httptest.NewRecorder()
		wordRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, gotDays)

		var resp RetentionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Samples, 2)
		assert.InDelta(t, 0.91, resp.Samples[1].Retention, 1e-9)
	})

	t.Run("days out of range is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewWordHandler(&mockWordService{}, &mockReviewService{}, testLogger())

		for _, days := range []string{"-1", "1000"} {
			req := asUser(httptest.NewRequest(http.MethodGet,
				"/api/words/"+wordID.String()+"/retention?days="+days, nil), userID)
			rr := httptest.NewRecorder()
			wordRouter(handler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "days=%s", days)
		}
	})
}
