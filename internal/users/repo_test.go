package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tirupurthreads/storefront-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	usersTable := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  phone TEXT,
  role TEXT NOT NULL DEFAULT 'customer',
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(usersTable).Error)
	return db
}

func TestCreateDefaultsToActiveCustomer(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	email := uuid.NewString() + "@example.com"

	user, err := repo.Create(context.Background(), CreateUserDTO{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Arun",
		LastName:     "Kumar",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, enums.UserRoleCustomer, user.Role)
	assert.True(t, user.IsActive)

	found, err := repo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	email := uuid.NewString() + "@example.com"

	dto := CreateUserDTO{Email: email, PasswordHash: "hash", FirstName: "Arun", LastName: "Kumar"}
	_, err := repo.Create(context.Background(), dto)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), dto)
	assert.Error(t, err)
}

func TestUpdateLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user, err := repo.Create(context.Background(), CreateUserDTO{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		FirstName:    "Arun",
		LastName:     "Kumar",
	})
	require.NoError(t, err)
	require.Nil(t, user.LastLoginAt)

	at := time.Now().UTC()
	require.NoError(t, repo.UpdateLastLogin(context.Background(), user.ID, at))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
}

func TestUpdateProfileLeavesNilFieldsAlone(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user, err := repo.Create(context.Background(), CreateUserDTO{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		FirstName:    "Arun",
		LastName:     "Kumar",
	})
	require.NoError(t, err)

	phone := "9876543210"
	updated, err := repo.UpdateProfile(context.Background(), user.ID, UpdateProfileDTO{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, "Arun", updated.FirstName)
	assert.Equal(t, "Kumar", updated.LastName)

	first := "Vel"
	updated, err = repo.UpdateProfile(context.Background(), user.ID, UpdateProfileDTO{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Vel", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
}
