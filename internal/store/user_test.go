package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickmed/accounts-api/internal/model"
	"github.com/quickmed/accounts-api/internal/store"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *store.Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, store.New(mock)
}

var userCols = []string{"id", "full_name", "email", "phone", "password_hash", "user_type", "created_at", "updated_at"}

func TestCreateUser(t *testing.T) {
	mock, st := newMock(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("u1", "Dr A", "a@x.com", "111", "hash", "doctor").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := st.CreateUser(context.Background(), &model.User{
		ID: "u1", FullName: "Dr A", Email: "a@x.com", Phone: "111",
		PasswordHash: "hash", UserType: "doctor",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByEmail(t *testing.T) {
	mock, st := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("u1", "Dr A", "a@x.com", "111", "hash", "doctor", now, now))

	u, err := st.UserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "doctor", u.UserType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByPhoneNotFound(t *testing.T) {
	mock, st := newMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone = \$1`).
		WithArgs("111").
		WillReturnError(pgx.ErrNoRows)

	_, err := st.UserByPhone(context.Background(), "111")
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTaken(t *testing.T) {
	mock, st := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE email = \$1\)`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := st.EmailTaken(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}
