// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/loja-backend/internal/models"
)

func TestRegisterStoresDigestOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{
		Name:            "Maria Silva",
		Email:           "maria@example.com",
		Password:        "Secret123!",
		PasswordConfirm: "Secret123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "maria@example.com").Error)
	assert.NotEqual(t, "Secret123!", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "Secret123!")
	assert.NoError(t, user.CheckPassword("Secret123!"))
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	req := &RegisterRequest{
		Name:            "First",
		Email:           "dup@example.com",
		Password:        "Secret123!",
		PasswordConfirm: "Secret123!",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	req.Name = "Second"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{
		Name:            "Typo",
		Email:           "typo@example.com",
		Password:        "Secret123!",
		PasswordConfirm: "Secret124!",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{
		Name:            "Known",
		Email:           "known@example.com",
		Password:        "Secret123!",
		PasswordConfirm: "Secret123!",
	})
	require.NoError(t, err)

	// Unknown email and wrong password both surface the same sentinel.
	_, errUnknown := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "Secret123!"})
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	_, errWrongPass := svc.Login(&LoginRequest{Email: "known@example.com", Password: "Wrong123!"})
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)

	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{
		Name:            "Login",
		Email:           "login@example.com",
		Password:        "Secret123!",
		PasswordConfirm: "Secret123!",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&LoginRequest{Email: "login@example.com", Password: "Secret123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "login@example.com", resp.User.Email)
}
