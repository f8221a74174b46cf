package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domainerrors "blood-link.backend/internal/domain/errors"
)

func TestReportUsecase_Evaluate_Eligible(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	users.add(u)

	store := newStoreStub()
	classifier := &classifierStub{eligible: true}
	uc := NewReportUsecase(users, &extractorStub{}, classifier, store)

	verified, evalErr, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte("Hemoglobin: 14.1 g/dL"))
	require.NoError(t, err)
	require.NoError(t, evalErr)
	require.True(t, verified)

	require.True(t, u.Verified)
	require.Equal(t, "Hemoglobin: 14.1 g/dL", classifier.gotText)
	require.Equal(t, []byte("Hemoglobin: 14.1 g/dL"), store.saved["report.txt"])
}

func TestReportUsecase_Evaluate_Ineligible(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	u.Verified = true
	users.add(u)

	uc := NewReportUsecase(users, &extractorStub{}, &classifierStub{eligible: false}, newStoreStub())

	verified, evalErr, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte("Hemoglobin: 9.8 g/dL"))
	require.NoError(t, err)
	require.NoError(t, evalErr)
	require.False(t, verified)

	// An ineligible verdict overwrites a previously verified flag.
	require.False(t, u.Verified)
}

func TestReportUsecase_Evaluate_ClassifierUnavailableFailsOpen(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	users.add(u)

	classifier := &classifierStub{err: domainerrors.ErrClassifierUnavailable}
	uc := NewReportUsecase(users, &extractorStub{}, classifier, newStoreStub())

	verified, evalErr, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte("anything"))
	require.NoError(t, err)
	require.ErrorIs(t, evalErr, domainerrors.ErrClassifierUnavailable)
	require.False(t, verified)
	require.False(t, u.Verified)
}

func TestReportUsecase_Evaluate_StorageFailure(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	users.add(u)

	store := newStoreStub()
	store.saveErr = errors.New("disk full")
	classifier := &classifierStub{eligible: true}
	uc := NewReportUsecase(users, &extractorStub{}, classifier, store)

	_, _, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte("anything"))
	require.Error(t, err)

	// Nothing downstream of storage runs.
	require.Empty(t, classifier.gotText)
	require.False(t, u.Verified)
}

func TestReportUsecase_Evaluate_ExtractionFailure(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	u.Verified = true
	users.add(u)

	uc := NewReportUsecase(users, &extractorStub{err: errors.New("unreadable")}, &classifierStub{eligible: true}, newStoreStub())

	verified, evalErr, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte{0xff, 0xfe})
	require.NoError(t, err)
	require.Error(t, evalErr)
	require.False(t, verified)
	require.False(t, u.Verified)
}

func TestReportUsecase_Evaluate_PersistFailure(t *testing.T) {
	users := newUserRepoStub()
	u := donor("ravi", "B+")
	users.add(u)
	users.verifiedErr = errors.New("db down")

	uc := NewReportUsecase(users, &extractorStub{}, &classifierStub{eligible: true}, newStoreStub())

	_, _, err := uc.Evaluate(context.Background(), u.ID, "report.txt", []byte("anything"))
	require.Error(t, err)
}
