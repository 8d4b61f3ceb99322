package api

import (
	"log/slog"
	"net/http"

	"github.com/dstrickland/wordsmith-api/internal/api/shared"
	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/dstrickland/wordsmith-api/internal/service/word"
)

// Projection size bounds for the schedule and retention endpoints. Both
// projections cost work proportional to their length, so client-supplied
// sizes are range-checked before they reach the engine.
const (
	defaultScheduleSteps = 5
	maxScheduleSteps     = 60
	defaultRetentionDays = 30
	maxRetentionDays     = 365
)

// WordHandler handles HTTP requests for saved word management and the
// per-word scheduling projections.
type WordHandler struct {
	wordService   word.Service
	reviewService review.Service
	logger        *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(
	wordService word.Service,
	reviewService review.Service,
	log *slog.Logger,
) *WordHandler {
	if wordService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word handler requires a word service")
	}
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word handler requires a review service")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word handler requires a logger")
	}

	return &WordHandler{
		wordService:   wordService,
		reviewService: reviewService,
		logger:        log.With(slog.String("component", "word_handler")),
	}
}

// SaveWord handles requests to save a new word for the authenticated user.
// POST /api/words
func (h *WordHandler) SaveWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SaveWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	saved, err := h.wordService.SaveWord(r.Context(), userID, req.Word)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("word saved",
		slog.String("user_id", userID.String()),
		slog.String("word_id", saved.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, toWordResponse(saved))
}

// ListWords handles requests to list the authenticated user's saved words.
// GET /api/words
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	words, err := h.wordService.ListWords(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]WordResponse, 0, len(words))
	for i := range words {
		responses = append(responses, toWordResponse(&words[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteWord handles requests to delete a saved word and its history.
// DELETE /api/words/{id}
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	userID, wordID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.wordService.DeleteWord(r.Context(), userID, wordID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkKnown handles requests to permanently retire a word from scheduling.
// POST /api/words/{id}/known
func (h *WordHandler) MarkKnown(w http.ResponseWriter, r *http.Request) {
	userID, wordID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.wordService.MarkKnown(r.Context(), userID, wordID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Schedule handles requests for a word's projected future review dates.
// GET /api/words/{id}/schedule?steps=n
func (h *WordHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, wordID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	steps, err := getQueryInt(r, "steps", defaultScheduleSteps)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if steps < 1 || steps > maxScheduleSteps {
		shared.RespondWithError(w, r, http.StatusBadRequest, "steps must be between 1 and 60")
		return
	}

	dates, err := h.reviewService.Forecast(r.Context(), userID, wordID, steps)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ScheduleResponse{
		WordID: wordID,
		Dates:  dates,
	})
}

// Retention handles requests for a word's projected retention curve.
// GET /api/words/{id}/retention?days=n
func (h *WordHandler) Retention(w http.ResponseWriter, r *http.Request) {
	userID, wordID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	days, err := getQueryInt(r, "days", defaultRetentionDays)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if days < 0 || days > maxRetentionDays {
		shared.RespondWithError(w, r, http.StatusBadRequest, "days must be between 0 and 365")
		return
	}

	samples, err := h.reviewService.RetentionCurve(r.Context(), userID, wordID, days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RetentionResponse{
		WordID:  wordID,
		Samples: samples,
	})
}

// toWordResponse converts a domain saved word to its API representation.
func toWordResponse(word *domain.SavedWord) WordResponse {
	return WordResponse{
		ID:               word.ID,
		Word:             word.Word,
		LearningLanguage: word.LearningLanguage,
		NativeLanguage:   word.NativeLanguage,
		IsKnown:          word.IsKnown,
		CreatedAt:        word.CreatedAt,
	}
}
