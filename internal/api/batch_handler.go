package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dstrickland/wordsmith-api/internal/api/shared"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/service/batch"
	"github.com/google/uuid"
)

// defaultBatchCount is used when the client does not specify a count.
const defaultBatchCount = 10

// BatchHandler handles HTTP requests for assembled question batches.
type BatchHandler struct {
	batchService batch.Service
	logger       *slog.Logger
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService batch.Service, log *slog.Logger) *BatchHandler {
	if batchService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("batch handler requires a batch service")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("batch handler requires a logger")
	}

	return &BatchHandler{
		batchService: batchService,
		logger:       log.With(slog.String("component", "batch_handler")),
	}
}

// GetBatch handles requests for a batch of review questions.
// GET /api/batch?count=n&exclude=word1,word2
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := getQueryInt(r, "count", defaultBatchCount)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	exclude := parseExcludeParam(r.URL.Query().Get("exclude"))

	items, err := h.batchService.AssembleBatch(r.Context(), userID, count, exclude)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("batch assembled",
		slog.String("user_id", userID.String()),
		slog.Int("requested", count),
		slog.Int("returned", len(items)))

	shared.RespondWithJSON(w, r, http.StatusOK, toBatchResponse(items))
}

// parseExcludeParam splits the comma-separated exclude parameter,
// dropping empty entries. Normalization happens in the batch service.
func parseExcludeParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

// toBatchResponse converts assembled batch items to the API shape. Words
// without a saved_words row omit word_id entirely rather than sending a
// zero UUID.
func toBatchResponse(items []batch.BatchItem) BatchResponse {
	responses := make([]BatchItemResponse, 0, len(items))
	for i := range items {
		item := BatchItemResponse{
			Word:     items[i].Word,
			Tier:     items[i].Tier,
			Question: items[i].Question,
		}
		if items[i].WordID != uuid.Nil {
			id := items[i].WordID
			item.WordID = &id
		}
		responses = append(responses, item)
	}
	return BatchResponse{Items: responses}
}
