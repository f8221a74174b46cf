package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/infrastructure/models"
)

// HospitalRepository implements hospital reference-data operations
type HospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository creates a new hospital repository
func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// List returns the full hospital registry, unfiltered
func (r *HospitalRepository) List(ctx context.Context) ([]*entities.Hospital, error) {
	var hospitalModels []models.Hospital
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&hospitalModels).Error; err != nil {
		return nil, err
	}

	var hospitals []*entities.Hospital
	for _, m := range hospitalModels {
		model := m
		hospitals = append(hospitals, r.toEntity(&model))
	}
	return hospitals, nil
}

// GetByEmail gets a hospital by its unique email
func (r *HospitalRepository) GetByEmail(ctx context.Context, email string) (*entities.Hospital, error) {
	var m models.Hospital
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Create inserts a hospital record
func (r *HospitalRepository) Create(ctx context.Context, hospital *entities.Hospital) error {
	m := &models.Hospital{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Address:   hospital.Address,
		ContactNo: hospital.ContactNo,
		Email:     hospital.Email,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *HospitalRepository) toEntity(m *models.Hospital) *entities.Hospital {
	return &entities.Hospital{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		ContactNo: m.ContactNo,
		Email:     m.Email,
	}
}
