package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyLanguage       = errors.New("language code cannot be empty")
)

// User represents a registered learner.
// Besides authentication details it carries the study preferences the
// batch assembler consults: which language pair the user is learning and
// which curated bundle (e.g. a TOEFL level) is currently active.
type User struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Password         string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword   string    `json:"-"` // Never expose password hash in JSON
	LearningLanguage string    `json:"learning_language"`
	NativeLanguage   string    `json:"native_language"`
	ActiveBundle     string    `json:"active_bundle,omitempty"` // Name of the active test-prep bundle, empty if none
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email, password and language pair.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password, learningLanguage, nativeLanguage string) (*User, error) {
	user := &User{
		ID:               uuid.New(),
		Email:            email,
		Password:         password, // Plaintext password - must be hashed before storage
		LearningLanguage: learningLanguage,
		NativeLanguage:   nativeLanguage,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.LearningLanguage == "" || u.NativeLanguage == "" {
		return ErrEmptyLanguage
	}

	// During user creation/update we need to validate the provided password
	if u.Password != "" {
		// When plaintext password is provided, validate its length
		if !validatePasswordLength(u.Password) {
			if len(u.Password) < 12 {
				return ErrPasswordTooShort
			}
			return ErrPasswordTooLong
		}
	} else {
		// When no plaintext password is provided, the user must have a hashed password
		// (this would be the case for existing users in the database)
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// Request-level validation uses the validator library's "email" rule;
// this check only guards direct construction of domain objects.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	// Check for domain part after @
	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}

// validatePasswordLength checks if a password meets length requirements:
// minimum 12 characters, maximum 72 characters (bcrypt's practical limit).
func validatePasswordLength(password string) bool {
	passLen := len(password)
	return passLen >= 12 && passLen <= 72
}
