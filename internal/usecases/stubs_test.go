package usecases

import (
	"context"
	"io"

	"github.com/google/uuid"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
)

type userRepoStub struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User

	createErr   error
	matchesFn   func(bloodGroup string, excludeUserID uuid.UUID) ([]*entities.User, error)
	verifiedErr error
	verified    map[uuid.UUID]bool
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{
		byID:     map[uuid.UUID]*entities.User{},
		byEmail:  map[string]*entities.User{},
		verified: map[uuid.UUID]bool{},
	}
}

func (s *userRepoStub) add(u *entities.User) {
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
}

func (s *userRepoStub) Create(_ context.Context, u *entities.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.byEmail[u.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	s.add(u)
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) FindMatches(_ context.Context, bloodGroup string, excludeUserID uuid.UUID) ([]*entities.User, error) {
	if s.matchesFn != nil {
		return s.matchesFn(bloodGroup, excludeUserID)
	}
	var out []*entities.User
	for _, u := range s.byID {
		if u.BloodGroup == bloodGroup && u.ID != excludeUserID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userRepoStub) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	if s.verifiedErr != nil {
		return s.verifiedErr
	}
	if u, ok := s.byID[id]; ok {
		u.Verified = verified
		s.verified[id] = verified
		return nil
	}
	return domainerrors.ErrNotFound
}

type sosRepoStub struct {
	byID      map[uuid.UUID]*entities.SOSRequest
	createErr error
	created   []*entities.SOSRequest
}

func newSOSRepoStub() *sosRepoStub {
	return &sosRepoStub{byID: map[uuid.UUID]*entities.SOSRequest{}}
}

func (s *sosRepoStub) Create(_ context.Context, req *entities.SOSRequest) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.byID[req.ID] = req
	s.created = append(s.created, req)
	return nil
}

func (s *sosRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.SOSRequest, error) {
	if req, ok := s.byID[id]; ok {
		return req, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *sosRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.SOSRequest, error) {
	var out []*entities.SOSRequest
	for _, req := range s.byID {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

type hospitalRepoStub struct {
	hospitals []*entities.Hospital
	listErr   error
}

func (s *hospitalRepoStub) List(_ context.Context) ([]*entities.Hospital, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.hospitals, nil
}

func (s *hospitalRepoStub) GetByEmail(_ context.Context, email string) (*entities.Hospital, error) {
	for _, h := range s.hospitals {
		if h.Email == email {
			return h, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *hospitalRepoStub) Create(_ context.Context, h *entities.Hospital) error {
	s.hospitals = append(s.hospitals, h)
	return nil
}

type dispatcherStub struct {
	sendErr error
	sentTo  []string
	bodies  []string
}

func (s *dispatcherStub) Send(_ context.Context, toNumber, body string) error {
	s.sentTo = append(s.sentTo, toNumber)
	s.bodies = append(s.bodies, body)
	return s.sendErr
}

type classifierStub struct {
	eligible bool
	err      error
	gotText  string
}

func (s *classifierStub) Evaluate(_ context.Context, reportText string) (bool, error) {
	s.gotText = reportText
	return s.eligible, s.err
}

type extractorStub struct {
	text string
	err  error
}

func (s *extractorStub) Extract(_ context.Context, _ string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.text != "" {
		return s.text, nil
	}
	return string(data), nil
}

type storeStub struct {
	saveErr error
	saved   map[string][]byte
}

func newStoreStub() *storeStub {
	return &storeStub{saved: map[string][]byte{}}
}

func (s *storeStub) Save(_ context.Context, key string, r io.Reader, _ int64) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.saved[key] = data
	return nil
}

func (s *storeStub) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, domainerrors.ErrNotFound
}
