package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quickmed/accounts-api/internal/model"
)

const vendorCols = `id, user_id, pharmacy_name, license_number, address, phone`

func (s *Store) VendorProfileByUser(ctx context.Context, userID string) (*model.VendorProfile, error) {
	p := &model.VendorProfile{}
	err := s.db.QueryRow(ctx,
		`SELECT `+vendorCols+` FROM vendor_profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.PharmacyName, &p.LicenseNumber, &p.Address, &p.Phone)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EnsureVendorProfile mirrors EnsureDoctorProfile. Vendor profiles start
// empty, no account fields are copied in.
func (s *Store) EnsureVendorProfile(ctx context.Context, userID string) (p *model.VendorProfile, created bool, err error) {
	p, err = s.VendorProfileByUser(ctx, userID)
	if err == nil {
		return p, false, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	id := uuid.New().String()
	tag, err := s.db.Exec(ctx,
		`INSERT INTO vendor_profiles (id, user_id) VALUES ($1,$2) ON CONFLICT (user_id) DO NOTHING`,
		id, userID,
	)
	if err != nil {
		return nil, false, err
	}
	if tag.RowsAffected() == 0 {
		p, err = s.VendorProfileByUser(ctx, userID)
		return p, false, err
	}
	return &model.VendorProfile{ID: id, UserID: userID}, true, nil
}

func (s *Store) SaveVendorProfile(ctx context.Context, p *model.VendorProfile) error {
	_, err := s.db.Exec(ctx,
		`UPDATE vendor_profiles SET pharmacy_name = $2, license_number = $3, address = $4, phone = $5 WHERE id = $1`,
		p.ID, p.PharmacyName, p.LicenseNumber, p.Address, p.Phone,
	)
	return err
}
