package datasources

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/domain/repositories"
)

// defaultHospitals is the static registry shown on the accept page.
// Addresses hold "lat,lon" coordinates.
var defaultHospitals = []entities.Hospital{
	{Name: "City General Hospital", Address: "18.5204,73.8567", ContactNo: "+912025501234", Email: "contact@citygeneral.org"},
	{Name: "Apex Trauma Center", Address: "18.5310,73.8446", ContactNo: "+912025505678", Email: "help@apextrauma.org"},
	{Name: "Redline Blood Bank", Address: "18.5089,73.8260", ContactNo: "+912025509012", Email: "desk@redlineblood.org"},
}

// SeedHospitals inserts the default hospital registry, skipping any entry
// whose email is already present. Safe to run on every startup.
func SeedHospitals(ctx context.Context, repo repositories.HospitalRepository) error {
	for _, h := range defaultHospitals {
		_, err := repo.GetByEmail(ctx, h.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		hospital := h
		hospital.ID = uuid.New()
		if err := repo.Create(ctx, &hospital); err != nil {
			// A concurrent seeder may have won the insert.
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				continue
			}
			return err
		}
	}
	return nil
}
