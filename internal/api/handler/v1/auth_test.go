package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/config"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/pkg/jwthelper"
	"github.com/magscene/magsav-api/internal/service"
)

const testSigningKey = "handler-test-key"

type fakeAuthService struct {
	signupErr error
	loginErr  error
}

func (f *fakeAuthService) Signup(_ context.Context, u domain.User) (domain.User, error) {
	if f.signupErr != nil {
		return domain.User{}, f.signupErr
	}
	u.ID, u.Role, u.Password = 1, domain.RoleAdmin, ""
	return u, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, _ string) (domain.User, error) {
	if f.loginErr != nil {
		return domain.User{}, f.loginErr
	}
	return domain.User{ID: 4, Email: email, Role: domain.RoleTechnicien}, nil
}

func authRouter(svc AuthService) *gin.Engine {
	h := NewAuthHandler(&config.APIConfig{JWTSigningKey: testSigningKey, JWTTTL: time.Hour}, svc)
	r := gin.New()
	r.POST("/auth/signup", h.HandleSignup)
	r.POST("/auth/login", h.HandleLogin)

	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	r := authRouter(&fakeAuthService{})

	body := `{"email":"chef@magsav.fr","password":"Sav2024ok","confirm_password":"Sav2024ok","name":"Chef atelier"}`
	w := perform(r, http.MethodPost, "/auth/signup", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode[response.LoginResponse](t, w)
	claims, err := jwthelper.ParseToken([]byte(testSigningKey), got.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthHandler_SignupRejects(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{
			name:       "weak password",
			body:       `{"email":"a@magsav.fr","password":"short","confirm_password":"short","name":"Al"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "confirmation mismatch",
			body:       `{"email":"a@magsav.fr","password":"Sav2024ok","confirm_password":"Sav2024ko","name":"Al"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "email taken",
			body:       `{"email":"a@magsav.fr","password":"Sav2024ok","confirm_password":"Sav2024ok","name":"Al"}`,
			err:        service.ErrUserEmailExists,
			wantStatus: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authRouter(&fakeAuthService{signupErr: tt.err})

			w := perform(r, http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestAuthHandler_LoginBindsUserAgent(t *testing.T) {
	r := authRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"tech@magsav.fr","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "magsav-desktop/3.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	claims, err := jwthelper.ParseToken([]byte(testSigningKey), decode[response.LoginResponse](t, w).Token)
	require.NoError(t, err)
	assert.Equal(t, "magsav-desktop/3.0", claims.UserAgent)
}

func TestAuthHandler_LoginWrongCredentials(t *testing.T) {
	r := authRouter(&fakeAuthService{loginErr: service.ErrWrongPassword})

	w := perform(r, http.MethodPost, "/auth/login", `{"email":"tech@magsav.fr","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReadinessHandler(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	r := gin.New()
	r.GET("/readiness", NewReadinessHandler(db).HandleReadiness)

	mock.ExpectPing()
	w := perform(r, http.MethodGet, "/readiness", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "up", decode[response.Readiness](t, w).Database)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = perform(r, http.MethodGet, "/readiness", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "down", decode[response.Readiness](t, w).Database)

	require.NoError(t, mock.ExpectationsWereMet())
}
