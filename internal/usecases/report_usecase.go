package usecases

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"blood-link.backend/internal/domain/repositories"
	"blood-link.backend/internal/infrastructure/eligibility"
	"blood-link.backend/internal/infrastructure/storage"
)

// ReportUsecase runs the eligibility gate over uploaded medical reports
type ReportUsecase struct {
	userRepo   repositories.UserRepository
	extractor  eligibility.TextExtractor
	classifier eligibility.Classifier
	store      storage.ReportStore
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(
	userRepo repositories.UserRepository,
	extractor eligibility.TextExtractor,
	classifier eligibility.Classifier,
	store storage.ReportStore,
) *ReportUsecase {
	return &ReportUsecase{
		userRepo:   userRepo,
		extractor:  extractor,
		classifier: classifier,
		store:      store,
	}
}

// Evaluate stores the upload, classifies the extracted text and persists the
// verdict onto the user. A classifier failure does not fail the upload: the
// user is marked unverified and the failure comes back as evalErr so the
// handler can show a warning. err is reserved for storage/database failures.
func (u *ReportUsecase) Evaluate(ctx context.Context, userID uuid.UUID, filename string, data []byte) (verified bool, evalErr error, err error) {
	if err := u.store.Save(ctx, filename, bytes.NewReader(data), int64(len(data))); err != nil {
		return false, nil, err
	}

	text, err := u.extractor.Extract(ctx, filename, data)
	if err != nil {
		if dbErr := u.userRepo.SetVerified(ctx, userID, false); dbErr != nil {
			return false, err, dbErr
		}
		return false, err, nil
	}

	verified, evalErr = u.classifier.Evaluate(ctx, text)
	if evalErr != nil {
		verified = false
	}

	if err := u.userRepo.SetVerified(ctx, userID, verified); err != nil {
		return false, evalErr, err
	}
	return verified, evalErr, nil
}
