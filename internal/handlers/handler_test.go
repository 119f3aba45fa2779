package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/quickmed/accounts-api/internal/auth"
	"github.com/quickmed/accounts-api/internal/handlers"
	"github.com/quickmed/accounts-api/internal/router"
	"github.com/quickmed/accounts-api/internal/store"
)

const testSecret = "test-secret"

var (
	userCols = []string{"id", "full_name", "email", "phone", "password_hash", "user_type", "created_at", "updated_at"}

	doctorCols = []string{
		"id", "user_id", "full_name", "email", "phone", "specialization", "qualification",
		"experience_years", "clinic_name", "clinic_address", "consultation_fee", "about",
	}

	vendorCols = []string{"id", "user_id", "pharmacy_name", "license_number", "address", "phone"}
)

// newServer serves the same router the binary does, backed by a mocked pool.
func newServer(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	h := handlers.NewHandler(store.New(mock), testSecret)
	return router.Setup(h, testSecret, "http://localhost:3000"), mock
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func accessToken(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := auth.MakeAccessToken(userID, role, testSecret)
	require.NoError(t, err)
	return tok
}

func userRow(id, fullName, email, phone, hash, role string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(userCols).AddRow(id, fullName, email, phone, hash, role, now, now)
}
