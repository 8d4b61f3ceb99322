package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/service"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	submit := func(handler *ReviewHandler, body string) *httptest.ResponseRecorder {
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/reviews",
			bytes.NewReader([]byte(body))), userID)
		rr := httptest.NewRecorder()
		handler.SubmitReview(rr, req)
		return rr
	}

	t.Run("records answer and returns next review date", func(t *testing.T) {
		t.Parallel()

		event := &domain.ReviewEvent{
			ID:             uuid.New(),
			WordID:         wordID,
			Response:       true,
			ReviewedAt:     now,
			NextReviewDate: now.AddDate(0, 0, 1),
		}

		var gotResponse bool
		handler := NewReviewHandler(&mockReviewService{
			SubmitReviewFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, response bool) (*domain.ReviewEvent, error) {
				assert.Equal(t, userID, gotUser)
				assert.Equal(t, wordID, gotWord)
				gotResponse = response
				return event, nil
			},
		}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`","response":true}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, gotResponse)

		var resp ReviewResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, event.ID, resp.ID)
		assert.True(t, resp.NextReviewDate.Equal(event.NextReviewDate))
	})

	t.Run("incorrect answer is passed through as false", func(t *testing.T) {
		t.Parallel()

		event := &domain.ReviewEvent{
			ID:             uuid.New(),
			WordID:         wordID,
			Response:       false,
			ReviewedAt:     now,
			NextReviewDate: now.AddDate(0, 0, 1),
		}

		var gotResponse bool
		handler := NewReviewHandler(&mockReviewService{
			SubmitReviewFn: func(ctx context.Context, gotUser, gotWord uuid.UUID, response bool) (*domain.ReviewEvent, error) {
				gotResponse = response
				return event, nil
			},
		}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`","response":false}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.False(t, gotResponse)
	})

	t.Run("missing response field is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing word_id is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{}, testLogger())

		rr := submit(handler, `{"response":true}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("another user's word is forbidden", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{Err: service.ErrNotOwned}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`","response":true}`)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("known word is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{Err: service.ErrWordKnown}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`","response":true}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing word returns not found", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{Err: store.ErrWordNotFound}, testLogger())

		rr := submit(handler, `{"word_id":"`+wordID.String()+`","response":true}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestNextReviewHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()
	next := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)

	t.Run("returns computed next review date", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{Next: next}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet,
			"/api/reviews/next?word_id="+wordID.String(), nil), userID)
		rr := httptest.NewRecorder()
		handler.NextReview(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp NextReviewResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, wordID, resp.WordID)
		assert.True(t, resp.NextReviewDate.Equal(next))
	})

	t.Run("missing word_id is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/reviews/next", nil), userID)
		rr := httptest.NewRecorder()
		handler.NextReview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDueCountHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("reports due count", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{Due: 7}, testLogger())

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/reviews/due-count", nil), userID)
		rr := httptest.NewRecorder()
		handler.DueCount(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp DueCountResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.Due)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewReviewHandler(&mockReviewService{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/reviews/due-count", nil)
		rr := httptest.NewRecorder()
		handler.DueCount(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
