package services_test

import (
	"testing"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := newDB(t)
	svc := services.NewAuthService(db)

	user, err := svc.Register(services.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "correct-horse", stored.Password, "plaintext must never be stored")
	assert.True(t, auth.CheckPassword(stored.Password, "correct-horse"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newDB(t)
	svc := services.NewAuthService(db)

	in := services.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	}
	_, err := svc.Register(in)
	require.NoError(t, err)

	in.Name = "Impostor"
	_, err = svc.Register(in)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	db := newDB(t)
	svc := services.NewAuthService(db)

	user, err := svc.Register(services.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	token, err := svc.Login("alice@example.com", "correct-horse")
	require.NoError(t, err)

	userID, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID, "token must be bound to the account that logged in")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register(services.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable to the caller.
	_, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
