package repository

import (
	"context"
	"encoding/json"
	"testing"

	"atelier/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Portfolio{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func fakeUser() *models.User {
	return &models.User{
		Username:  gofakeit.Username(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Age:       gofakeit.Number(18, 90),
		Gender:    gofakeit.Gender(),
		Email:     gofakeit.Email(),
		Password:  "$2a$10$notarealhashbutlongenoughtolooklikeone",
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := fakeUser()
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	found, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Email, found.Email)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Username, byID.Username)
}

func TestUserRepositoryGetByUsernameAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	found, err := repo.GetByUsername(context.Background(), "no_such_user")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := fakeUser()
	require.NoError(t, repo.Create(ctx, user))

	dup := fakeUser()
	dup.Username = user.Username
	assert.Error(t, repo.Create(ctx, dup))
}

func TestUserRepositoryPasswordNotSerialized(t *testing.T) {
	user := fakeUser()
	user.Password = "supersecret"

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "supersecret")
}
