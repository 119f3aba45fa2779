package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quickmed/accounts-api/internal/model"
)

const doctorCols = `id, user_id, full_name, email, phone, specialization, qualification, experience_years, clinic_name, clinic_address, consultation_fee, about`

func (s *Store) DoctorProfileByUser(ctx context.Context, userID string) (*model.DoctorProfile, error) {
	p := &model.DoctorProfile{}
	err := s.db.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctor_profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Specialization, &p.Qualification,
		&p.ExperienceYears, &p.ClinicName, &p.ClinicAddress, &p.ConsultationFee, &p.About)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EnsureDoctorProfile returns the profile for userID, creating an empty one
// if none exists. The unique constraint on user_id makes this safe against
// two first-accesses racing: the loser of the race re-reads the winner's row.
func (s *Store) EnsureDoctorProfile(ctx context.Context, userID string) (p *model.DoctorProfile, created bool, err error) {
	p, err = s.DoctorProfileByUser(ctx, userID)
	if err == nil {
		return p, false, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	id := uuid.New().String()
	tag, err := s.db.Exec(ctx,
		`INSERT INTO doctor_profiles (id, user_id) VALUES ($1,$2) ON CONFLICT (user_id) DO NOTHING`,
		id, userID,
	)
	if err != nil {
		return nil, false, err
	}
	if tag.RowsAffected() == 0 {
		// lost the race, row exists now
		p, err = s.DoctorProfileByUser(ctx, userID)
		return p, false, err
	}
	return &model.DoctorProfile{ID: id, UserID: userID}, true, nil
}

// SeedDoctorIdentity copies the account contact fields into a just-created
// profile. Runs once, never on later reads.
func (s *Store) SeedDoctorIdentity(ctx context.Context, profileID, fullName, email, phone string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE doctor_profiles SET full_name = $2, email = $3, phone = $4 WHERE id = $1`,
		profileID, fullName, email, phone,
	)
	return err
}

func (s *Store) SaveDoctorProfile(ctx context.Context, p *model.DoctorProfile) error {
	_, err := s.db.Exec(ctx,
		`UPDATE doctor_profiles SET full_name = $2, email = $3, phone = $4, specialization = $5, qualification = $6, experience_years = $7, clinic_name = $8, clinic_address = $9, consultation_fee = $10, about = $11 WHERE id = $1`,
		p.ID, p.FullName, p.Email, p.Phone, p.Specialization, p.Qualification,
		p.ExperienceYears, p.ClinicName, p.ClinicAddress, p.ConsultationFee, p.About,
	)
	return err
}
