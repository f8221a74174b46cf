package repositories

import (
	"context"

	"blood-link.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	// Create inserts the user; a duplicate email surfaces as
	// ErrAlreadyExists from the database unique constraint.
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindMatches returns every user whose stored blood group equals
	// bloodGroup exactly, excluding excludeUserID.
	FindMatches(ctx context.Context, bloodGroup string, excludeUserID uuid.UUID) ([]*entities.User, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}
