package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dstrickland/wordsmith-api/internal/api/shared"
	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/store"
)

// UserHandler handles HTTP requests for the authenticated user's profile:
// reading it, updating study preferences (language pair, active bundle)
// and deleting the account.
type UserHandler struct {
	userStore   store.UserStore
	bundleStore store.BundleStore
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userStore store.UserStore, bundleStore store.BundleStore, log *slog.Logger) *UserHandler {
	if userStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user handler requires a user store")
	}
	if bundleStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user handler requires a bundle store")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user handler requires a logger")
	}

	return &UserHandler{
		userStore:   userStore,
		bundleStore: bundleStore,
		logger:      log.With(slog.String("component", "user_handler")),
	}
}

// GetProfile handles requests for the authenticated user's profile.
// GET /api/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles requests to update the authenticated user's study
// preferences. A non-empty active bundle must name an existing bundle.
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if req.LearningLanguage != "" {
		user.LearningLanguage = req.LearningLanguage
	}
	if req.NativeLanguage != "" {
		user.NativeLanguage = req.NativeLanguage
	}
	if req.ActiveBundle != nil {
		if *req.ActiveBundle != "" {
			if _, err := h.bundleStore.GetByName(r.Context(), *req.ActiveBundle); err != nil {
				if errors.Is(err, store.ErrBundleNotFound) {
					shared.RespondWithError(w, r, http.StatusNotFound, "Bundle not found")
					return
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Failed to look up bundle", err)
				return
			}
		}
		user.ActiveBundle = *req.ActiveBundle
	}

	if err := h.userStore.Update(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("profile updated",
		slog.String("user_id", userID.String()),
		slog.String("active_bundle", user.ActiveBundle))

	shared.RespondWithJSON(w, r, http.StatusOK, toUserResponse(user))
}

// DeleteAccount handles requests to delete the authenticated user's
// account. Saved words and their review history cascade away with it.
// DELETE /api/users/me
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.userStore.Delete(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("account deleted", slog.String("user_id", userID.String()))

	w.WriteHeader(http.StatusNoContent)
}

// toUserResponse converts a domain user to its API representation.
func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		LearningLanguage: user.LearningLanguage,
		NativeLanguage:   user.NativeLanguage,
		ActiveBundle:     user.ActiveBundle,
		CreatedAt:        user.CreatedAt,
	}
}
