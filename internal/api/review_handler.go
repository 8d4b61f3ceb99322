package api

import (
	"log/slog"
	"net/http"

	"github.com/dstrickland/wordsmith-api/internal/api/shared"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/google/uuid"
)

// ReviewHandler handles HTTP requests for review submission and the
// due-word read endpoints.
type ReviewHandler struct {
	reviewService review.Service
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService review.Service, log *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review handler requires a review service")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review handler requires a logger")
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log.With(slog.String("component", "review_handler")),
	}
}

// SubmitReview handles requests to record an answer for a word.
// POST /api/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if req.WordID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "word_id is required")
		return
	}

	event, err := h.reviewService.SubmitReview(r.Context(), userID, req.WordID, *req.Response)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review submitted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", req.WordID.String()),
		slog.Bool("response", event.Response))

	shared.RespondWithJSON(w, r, http.StatusCreated, ReviewResponse{
		ID:             event.ID,
		WordID:         event.WordID,
		Response:       event.Response,
		ReviewedAt:     event.ReviewedAt,
		NextReviewDate: event.NextReviewDate,
	})
}

// NextReview handles requests for a word's current next review date,
// computed from its history without recording anything.
// GET /api/reviews/next?word_id=<uuid>
func (h *ReviewHandler) NextReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wordID, err := uuid.Parse(r.URL.Query().Get("word_id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "word_id must be a valid UUID")
		return
	}

	next, err := h.reviewService.NextReview(r.Context(), userID, wordID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NextReviewResponse{
		WordID:         wordID,
		NextReviewDate: next,
	})
}

// DueCount handles requests for the number of words currently due.
// GET /api/reviews/due-count
func (h *ReviewHandler) DueCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	due, err := h.reviewService.DueCount(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueCountResponse{Due: due})
}
