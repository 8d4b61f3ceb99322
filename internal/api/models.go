package api

import (
	"time"

	"github.com/dstrickland/wordsmith-api/internal/generation"
	"github.com/dstrickland/wordsmith-api/internal/service/batch"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email            string `json:"email"             validate:"required,email"`
	Password         string `json:"password"          validate:"required,min=12,max=72"`
	LearningLanguage string `json:"learning_language" validate:"required"`
	NativeLanguage   string `json:"native_language"   validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest defines the payload for updating the authenticated
// user's study preferences. Omitted fields keep their current values;
// ActiveBundle uses a pointer so an explicit empty string clears the
// active bundle.
type UpdateProfileRequest struct {
	LearningLanguage string  `json:"learning_language,omitempty"`
	NativeLanguage   string  `json:"native_language,omitempty"`
	ActiveBundle     *string `json:"active_bundle,omitempty"`
}

// UserResponse describes the authenticated user's profile.
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	LearningLanguage string    `json:"learning_language"`
	NativeLanguage   string    `json:"native_language"`
	ActiveBundle     string    `json:"active_bundle,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// SaveWordRequest defines the payload for saving a new word. The language
// pair comes from the user's profile, not the request.
type SaveWordRequest struct {
	Word string `json:"word" validate:"required,min=1,max=128"`
}

// WordResponse describes one saved word.
type WordResponse struct {
	ID               uuid.UUID `json:"id"`
	Word             string    `json:"word"`
	LearningLanguage string    `json:"learning_language"`
	NativeLanguage   string    `json:"native_language"`
	IsKnown          bool      `json:"is_known"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubmitReviewRequest defines the payload for recording a review answer.
// Response uses a pointer so a missing field fails validation instead of
// silently defaulting to incorrect.
type SubmitReviewRequest struct {
	WordID   uuid.UUID `json:"word_id"  validate:"required"`
	Response *bool     `json:"response" validate:"required"`
}

// ReviewResponse describes a recorded review event.
type ReviewResponse struct {
	ID             uuid.UUID `json:"id"`
	WordID         uuid.UUID `json:"word_id"`
	Response       bool      `json:"response"`
	ReviewedAt     time.Time `json:"reviewed_at"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// NextReviewResponse is the scheduling preview for a word.
type NextReviewResponse struct {
	WordID         uuid.UUID `json:"word_id"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// ScheduleResponse carries a word's projected future review dates.
type ScheduleResponse struct {
	WordID uuid.UUID   `json:"word_id"`
	Dates  []time.Time `json:"dates"`
}

// RetentionResponse carries a word's projected retention curve.
type RetentionResponse struct {
	WordID  uuid.UUID                `json:"word_id"`
	Samples []review.RetentionSample `json:"samples"`
}

// DueCountResponse reports how many words are currently due for review.
type DueCountResponse struct {
	Due int `json:"due"`
}

// BatchItemResponse is one entry of an assembled batch.
type BatchItemResponse struct {
	Word     string               `json:"word"`
	WordID   *uuid.UUID           `json:"word_id,omitempty"`
	Tier     batch.Tier           `json:"tier"`
	Question *generation.Question `json:"question"`
}

// BatchResponse is the assembled batch of review questions.
type BatchResponse struct {
	Items []BatchItemResponse `json:"items"`
}
