package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/quickmed/accounts-api/internal/model"
)

const userCols = `id, full_name, email, phone, password_hash, user_type, created_at, updated_at`

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, phone, password_hash, user_type) VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.FullName, u.Email, u.Phone, u.PasswordHash, u.UserType,
	)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email = $1`, email))
}

func (s *Store) UserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE phone = $1`, phone))
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	return s.scanUser(s.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

// EmailTaken and PhoneTaken back the pre-insert duplicate checks at signup.
// The unique constraints on users remain the concurrent-signup backstop.
func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&taken)
	return taken, err
}

func (s *Store) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	var taken bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`, phone).Scan(&taken)
	return taken, err
}

func (s *Store) scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.UserType, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
