package repositories

import (
	"context"

	"blood-link.backend/internal/domain/entities"
)

// HospitalRepository defines hospital reference-data operations
type HospitalRepository interface {
	List(ctx context.Context) ([]*entities.Hospital, error)
	GetByEmail(ctx context.Context, email string) (*entities.Hospital, error)
	Create(ctx context.Context, hospital *entities.Hospital) error
}
