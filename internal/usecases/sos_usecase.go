package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blood-link.backend/internal/domain/entities"
	"blood-link.backend/internal/domain/repositories"
	"blood-link.backend/internal/infrastructure/notification"
)

// SOSUsecase handles the SOS request lifecycle
type SOSUsecase struct {
	sosRepo      repositories.SOSRequestRepository
	userRepo     repositories.UserRepository
	hospitalRepo repositories.HospitalRepository
	dispatcher   notification.Dispatcher

	// Every alert goes to this one configured number; fan-out to the
	// matched donors' own numbers is an unresolved gap in the flow.
	alertRecipient string
	publicBaseURL  string
}

// NewSOSUsecase creates a new SOS usecase
func NewSOSUsecase(
	sosRepo repositories.SOSRequestRepository,
	userRepo repositories.UserRepository,
	hospitalRepo repositories.HospitalRepository,
	dispatcher notification.Dispatcher,
	alertRecipient string,
	publicBaseURL string,
) *SOSUsecase {
	return &SOSUsecase{
		sosRepo:        sosRepo,
		userRepo:       userRepo,
		hospitalRepo:   hospitalRepo,
		dispatcher:     dispatcher,
		alertRecipient: alertRecipient,
		publicBaseURL:  publicBaseURL,
	}
}

// RaiseRequest creates a Pending request copying the requester's current
// blood group, then fires one best-effort alert with the accept deep link.
// The request is returned even when dispatch fails; dispatchErr reports that
// failure separately so the handler can surface a warning.
func (u *SOSUsecase) RaiseRequest(ctx context.Context, userID uuid.UUID) (req *entities.SOSRequest, dispatchErr error, err error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	req = &entities.SOSRequest{
		ID:            uuid.New(),
		UserID:        user.ID,
		RequiredBlood: user.BloodGroup,
		Status:        entities.SOSStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := u.sosRepo.Create(ctx, req); err != nil {
		return nil, nil, err
	}

	body := fmt.Sprintf(
		"URGENT: %s blood needed for %s. Accept here: %s/accept/%s",
		req.RequiredBlood, user.Name, u.publicBaseURL, req.ID,
	)
	dispatchErr = u.dispatcher.Send(ctx, u.alertRecipient, body)

	return req, dispatchErr, nil
}

// ViewAccept resolves the accept page data: the patient behind the request,
// every donor matching the required blood group (the patient excluded), and
// the full, unfiltered hospital registry.
func (u *SOSUsecase) ViewAccept(ctx context.Context, requestID uuid.UUID) (*entities.AcceptView, error) {
	req, err := u.sosRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	patient, err := u.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	donors, err := u.userRepo.FindMatches(ctx, req.RequiredBlood, patient.ID)
	if err != nil {
		return nil, err
	}

	hospitals, err := u.hospitalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.AcceptView{
		Request:   req,
		Patient:   patient,
		Donors:    donors,
		Hospitals: hospitals,
	}, nil
}
