package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The email unique constraint makes the insert an
// atomic insert-or-fail; a duplicate surfaces as ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Name:         user.Name,
		Address:      user.Address,
		BloodGroup:   user.BloodGroup,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Age:          user.Age,
		Gender:       user.Gender,
		LiveLocation: user.LiveLocation,
		Phone:        user.Phone.Ptr(),
		Verified:     user.Verified,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// FindMatches returns all users with the exact stored blood group, excluding
// the requester. No pagination or ranking; the caller gets every match.
func (r *UserRepository) FindMatches(ctx context.Context, bloodGroup string, excludeUserID uuid.UUID) ([]*entities.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Where("blood_grp = ? AND id <> ?", bloodGroup, excludeUserID).
		Order("created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	var users []*entities.User
	for _, m := range userModels {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return users, nil
}

// SetVerified persists the eligibility verdict onto the user row
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified":   verified,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		BloodGroup:   m.BloodGroup,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Age:          m.Age,
		Gender:       m.Gender,
		LiveLocation: m.LiveLocation,
		Phone:        null.StringFromPtr(m.Phone),
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
