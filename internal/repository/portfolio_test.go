package repository

import (
	"context"
	"testing"
	"time"

	"atelier/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPortfolioRepositoryCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	first := &models.Portfolio{
		Title:       "Harbor at Dusk",
		Description: "Oil on canvas, 2019.",
		Images:      []string{"https://cdn.example.com/harbor-1.jpg", "https://cdn.example.com/harbor-2.jpg"},
	}
	second := &models.Portfolio{
		Title:       "Winter Series",
		Description: "Photographic study.",
		Images:      []string{"https://cdn.example.com/winter.jpg"},
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	portfolios, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, portfolios, 2)

	// Insertion order and image order are both preserved.
	assert.Equal(t, "Harbor at Dusk", portfolios[0].Title)
	assert.Equal(t, []string{
		"https://cdn.example.com/harbor-1.jpg",
		"https://cdn.example.com/harbor-2.jpg",
	}, portfolios[0].Images)
}

func TestPortfolioRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	p := &models.Portfolio{
		Title:       "Before",
		Description: "Original description.",
		Images:      []string{"https://cdn.example.com/a.jpg"},
	}
	require.NoError(t, repo.Create(ctx, p))
	createdUpdatedAt := p.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(ctx, p.ID, "After", "New description.", []string{"https://cdn.example.com/b.jpg"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "New description.", updated.Description)
	assert.Equal(t, []string{"https://cdn.example.com/b.jpg"}, updated.Images)

	// UpdateColumns keeps the original timestamp.
	assert.WithinDuration(t, createdUpdatedAt, updated.UpdatedAt, time.Millisecond)
}

func TestPortfolioRepositoryUpdateImagesRoundTrip(t *testing.T) {
	// Images pass through gorm's JSON serializer on update; the stored column
	// must read back as the same slice for any length, including empty.
	tests := []struct {
		name   string
		images []string
	}{
		{"single image", []string{"https://cdn.example.com/solo.jpg"}},
		{"multiple images", []string{
			"https://cdn.example.com/one.jpg",
			"https://cdn.example.com/two.jpg",
			"https://cdn.example.com/three.jpg",
		}},
		{"empty list", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewPortfolioRepository(db)
			ctx := context.Background()

			p := &models.Portfolio{
				Title:       "Original",
				Description: "Original description.",
				Images:      []string{"https://cdn.example.com/old.jpg"},
			}
			require.NoError(t, repo.Create(ctx, p))

			updated, err := repo.Update(ctx, p.ID, "Original", "Original description.", tt.images)
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, tt.images, updated.Images)

			// Fresh read confirms the stored column, not a cached struct.
			stored, err := repo.GetByID(ctx, p.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.images, stored.Images)
		})
	}
}

func TestPortfolioRepositoryUpdateAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db)

	updated, err := repo.Update(context.Background(), 999, "x", "y", nil)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPortfolioRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	p := &models.Portfolio{Title: "Gone Soon", Description: "d", Images: []string{}}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	found, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting an absent id is a no-op, not an error.
	assert.NoError(t, repo.Delete(ctx, p.ID))
}

func TestPortfolioRepositoryListQueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "portfolios"`).WillReturnError(assert.AnError)

	repo := NewPortfolioRepository(db)
	_, err = repo.List(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
