package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/domain/repositories"
	"blood-link.backend/pkg/crypto"
	"blood-link.backend/pkg/jwt"
)

// AuthUsecase handles signup and login business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password and returns a token pair
// for the fresh session. A taken email surfaces as ErrAlreadyExists straight
// from the insert; there is no separate lookup step to race against.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.SignupInput) (*entities.User, *jwt.TokenPair, error) {
	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Address:      input.Address,
		BloodGroup:   input.BloodGroup,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Age:          input.Age,
		Gender:       input.Gender,
		LiveLocation: input.LiveLocation,
		Phone:        null.NewString(input.Phone, input.Phone != ""),
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies credentials and returns the user with a session token pair.
// Unknown email and bad password both map to ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
