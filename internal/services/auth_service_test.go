package services

import (
	"testing"
	"time"

	"github.com/3k2024/bodega-simple/internal/config"
	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		AdminUsername: "admin",
		AdminPassword: "super-secret-pass",
	}
	return NewAuthService(testDB(t), cfg)
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := testAuthService(t)

	user, err := svc.CreateUser(&dto.CreateUserRequest{Username: "bodega_user", Password: "bodega12345"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "bodega12345", user.PasswordHash, "password must be stored hashed")

	resp, err := svc.Login(&dto.LoginRequest{Username: "bodega_user", Password: "bodega12345"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "bodega_user", claims["username"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testAuthService(t)
	_, err := svc.CreateUser(&dto.CreateUserRequest{Username: "bodega_user", Password: "bodega12345"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Username: "bodega_user", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Username: "ghost", Password: "bodega12345"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.CreateUser(&dto.CreateUserRequest{Username: "u", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "u", Password: "longenough", Role: "root"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "dup", Password: "longenough"})
	require.NoError(t, err)
	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "dup", Password: "longenough"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSeedAdminOnlyOnEmptyTable(t *testing.T) {
	svc := testAuthService(t)

	require.NoError(t, svc.SeedAdmin())

	var admin models.User
	require.NoError(t, svc.db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Second call is a no-op.
	require.NoError(t, svc.SeedAdmin())
	var count int64
	require.NoError(t, svc.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
