package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	db         store.DBTX
	bcryptCost int
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a PostgreSQL implementation of store.UserStore.
// An out-of-range bcrypt cost falls back to bcrypt.DefaultCost.
func NewUserStore(db store.DBTX, bcryptCost int) *UserStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{
		db:         db,
		bcryptCost: bcryptCost,
	}
}

// WithTx returns a UserStore bound to the given transaction.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
	}
}

// Create implements store.UserStore.Create. The plaintext password is
// hashed here and never stored.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	query := `
		INSERT INTO users (id, email, hashed_password, learning_language, native_language, active_bundle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.LearningLanguage,
		user.NativeLanguage,
		nullIfEmpty(user.ActiveBundle),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create user",
			"user_id", user.ID,
			"error", err)
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, learning_language, native_language, active_bundle, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, learning_language, native_language, active_bundle, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// Update implements store.UserStore.Update. A non-empty plaintext
// Password on the user replaces the stored hash.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET email = $1, hashed_password = $2, learning_language = $3, native_language = $4, active_bundle = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		user.Email,
		user.HashedPassword,
		user.LearningLanguage,
		user.NativeLanguage,
		nullIfEmpty(user.ActiveBundle),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		log.Error("failed to update user",
			"user_id", user.ID,
			"error", err)
		return MapUniqueViolation(err, store.ErrEmailExists)
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// scanUser scans a single user row, mapping sql.ErrNoRows to
// store.ErrUserNotFound.
func (s *UserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var activeBundle sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.LearningLanguage,
		&user.NativeLanguage,
		&activeBundle,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	user.ActiveBundle = activeBundle.String
	return &user, nil
}

// nullIfEmpty converts an empty string to a SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
