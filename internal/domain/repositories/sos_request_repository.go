package repositories

import (
	"context"

	"blood-link.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// SOSRequestRepository defines SOS request data operations
type SOSRequestRepository interface {
	Create(ctx context.Context, req *entities.SOSRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SOSRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SOSRequest, error)
}
