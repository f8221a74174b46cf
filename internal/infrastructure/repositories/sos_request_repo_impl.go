package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/infrastructure/models"
)

// SOSRequestRepository implements SOS request data operations
type SOSRequestRepository struct {
	db *gorm.DB
}

// NewSOSRequestRepository creates a new SOS request repository
func NewSOSRequestRepository(db *gorm.DB) *SOSRequestRepository {
	return &SOSRequestRepository{db: db}
}

// Create inserts a new SOS request. Requests are never de-duplicated; each
// call produces a fresh row.
func (r *SOSRequestRepository) Create(ctx context.Context, req *entities.SOSRequest) error {
	m := &models.SOSRequest{
		ID:            req.ID,
		UserID:        req.UserID,
		RequiredBlood: req.RequiredBlood,
		Status:        string(req.Status),
		CreatedAt:     req.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets an SOS request by ID
func (r *SOSRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SOSRequest, error) {
	var m models.SOSRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByUser lists a user's SOS requests, newest first
func (r *SOSRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SOSRequest, error) {
	var reqModels []models.SOSRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}

	var reqs []*entities.SOSRequest
	for _, m := range reqModels {
		model := m
		reqs = append(reqs, r.toEntity(&model))
	}
	return reqs, nil
}

func (r *SOSRequestRepository) toEntity(m *models.SOSRequest) *entities.SOSRequest {
	return &entities.SOSRequest{
		ID:            m.ID,
		UserID:        m.UserID,
		RequiredBlood: m.RequiredBlood,
		Status:        entities.SOSStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}
