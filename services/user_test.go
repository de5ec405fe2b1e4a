package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/models"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	user, err := svc.Register("alice@example.edu", "alice", "secret-password", false)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.edu", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret-password", user.Password, "password must not be stored in plaintext")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register("alice@example.edu", "alice2", "secret-password", false)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register("alice2@example.edu", "alice", "secret-password", false)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestRegisterIndexBackstop(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	user, err := svc.Register("alice@example.edu", "alice", "secret-password", false)
	require.NoError(t, err)

	// Soft delete hides the row from the pre-insert checks while the unique
	// indexes still see it, forcing the insert-failure path
	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	t.Run("email index", func(t *testing.T) {
		_, err := svc.Register("alice@example.edu", "fresh-name", "secret-password", false)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("username index", func(t *testing.T) {
		_, err := svc.Register("fresh@example.edu", "alice", "secret-password", false)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	_, err := svc.Register("bob@example.edu", "bob", "right-password", false)
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login("bob@example.edu", "right-password")
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("bob@example.edu", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.edu", "right-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateAdminStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	user, err := svc.Register("carol@example.edu", "carol", "secret-password", false)
	require.NoError(t, err)

	updated, err := svc.UpdateAdminStatus(user.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	updated, err = svc.UpdateAdminStatus(user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAdmin)

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateAdminStatus(9999, true)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestFindAll(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestUserService(db)

	users, err := svc.FindAll()
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Register("a@example.edu", "a-user", "secret-password", false)
	require.NoError(t, err)
	_, err = svc.Register("b@example.edu", "b-user", "secret-password", true)
	require.NoError(t, err)

	users, err = svc.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a-user", users[0].Username)
	assert.True(t, users[1].IsAdmin)
}
