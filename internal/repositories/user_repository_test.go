package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/test/helpers"
)

func newUser(email string) *models.User {
	return &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PhoneNumber:  "1234567890",
		UserPassword: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		UserType:     models.UserTypeUser,
	}
}

func createUser(t *testing.T, repo repositories.UserRepository, email string) *models.User {
	t.Helper()
	user := newUser(email)
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := createUser(t, repo, "alice@test.com")
	assert.NotZero(t, user.UserID)

	found, err := repo.FindByEmail("alice@test.com")
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	byID, err := repo.FindByID(user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", byID.Email)
}

func TestUserRepository_EmailCaseInsensitive(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	created := createUser(t, repo, "Mixed.Case@Test.COM")
	assert.Equal(t, "mixed.case@test.com", created.Email)

	found, err := repo.FindByEmail("MIXED.CASE@test.com")
	assert.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	createUser(t, repo, "dup@test.com")

	err := repo.Create(newUser("dup@test.com"))
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)

	// Same address in a different case hits the same constraint.
	err = repo.Create(newUser("DUP@test.com"))
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	_, err := repo.FindByEmail("nobody@test.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_ResetTokenLifecycle(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	user := createUser(t, repo, "reset@test.com")

	expires := time.Now().Add(time.Hour)
	err := repo.SetResetToken(user.UserID, "token-one", expires)
	assert.NoError(t, err)

	found, err := repo.FindByActiveResetToken("token-one", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	err = repo.ConsumeResetToken(user.UserID, "token-one", "new-hash")
	assert.NoError(t, err)

	// The token is single use: a second consume fails.
	err = repo.ConsumeResetToken(user.UserID, "token-one", "other-hash")
	assert.ErrorIs(t, err, repositories.ErrResetTokenInvalid)

	// Both token columns are cleared on consume.
	var stored models.User
	assert.NoError(t, db.First(&stored, user.UserID).Error)
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpires)
	assert.Equal(t, "new-hash", stored.UserPassword)
}

func TestUserRepository_ResetToken_Expired(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	user := createUser(t, repo, "expired@test.com")

	err := repo.SetResetToken(user.UserID, "stale-token", time.Now().Add(-time.Minute))
	assert.NoError(t, err)

	_, err = repo.FindByActiveResetToken("stale-token", time.Now())
	assert.ErrorIs(t, err, repositories.ErrResetTokenInvalid)
}

func TestUserRepository_ResetToken_LastWriteWins(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	user := createUser(t, repo, "race@test.com")

	expires := time.Now().Add(time.Hour)
	assert.NoError(t, repo.SetResetToken(user.UserID, "first-token", expires))
	assert.NoError(t, repo.SetResetToken(user.UserID, "second-token", expires))

	// The superseded token can neither be looked up nor consumed.
	_, err := repo.FindByActiveResetToken("first-token", time.Now())
	assert.ErrorIs(t, err, repositories.ErrResetTokenInvalid)

	err = repo.ConsumeResetToken(user.UserID, "first-token", "new-hash")
	assert.ErrorIs(t, err, repositories.ErrResetTokenInvalid)

	// The fresh token still works.
	assert.NoError(t, repo.ConsumeResetToken(user.UserID, "second-token", "new-hash"))
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)
	user := createUser(t, repo, "pwd@test.com")

	assert.NoError(t, repo.UpdatePassword(user.UserID, "brand-new-hash"))

	stored, err := repo.FindByID(user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "brand-new-hash", stored.UserPassword)

	err = repo.UpdatePassword(99999, "hash")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
