package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avoronkov/catalog-api/internal/hash"
	"github.com/avoronkov/catalog-api/internal/models"
	"github.com/avoronkov/catalog-api/internal/repo"
	"github.com/avoronkov/catalog-api/internal/service"
	"github.com/avoronkov/catalog-api/internal/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *tokens.Service
	A      *AuthHTTP
	P      *CatalogHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory db")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	ts := &tokens.Service{
		Secret:   []byte("test-secret"),
		Issuer:   "catalog-api",
		Audience: "catalog-clients",
	}

	store := repo.New(db)
	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		T:      t,
		E:      e,
		DB:     db,
		Tokens: ts,
		A:      &AuthHTTP{Svc: &service.AuthService{Repo: store, Tokens: ts}},
		P:      &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser(username, password, role string) *models.User {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := &models.User{Username: username, Role: role, PasswordHash: pwHash}
	require.NoError(env.T, env.DB.Create(user).Error)
	return user
}
