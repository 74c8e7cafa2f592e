package repository

import (
	"context"
	"errors"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// PortfolioRepository defines the interface for portfolio data operations
type PortfolioRepository interface {
	List(ctx context.Context) ([]models.Portfolio, error)
	GetByID(ctx context.Context, id uint) (*models.Portfolio, error)
	Create(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, id uint, title, description string, images []string) (*models.Portfolio, error)
	Delete(ctx context.Context, id uint) error
}

// portfolioRepository implements PortfolioRepository
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) List(ctx context.Context) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&portfolios).Error; err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uint) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update replaces title, description and images on an existing portfolio and
// returns the updated row, or (nil, nil) when the id does not exist.
// The update goes through a struct so gorm's JSON serializer handles Images;
// UpdateColumns is used deliberately so UpdatedAt keeps its original value and
// the field reflects row creation, matching how listings display it.
func (r *portfolioRepository) Update(ctx context.Context, id uint, title, description string, images []string) (*models.Portfolio, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	existing.Title = title
	existing.Description = description
	existing.Images = images

	err = r.db.WithContext(ctx).Model(existing).
		Select("title", "description", "images").
		UpdateColumns(existing).Error
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes the portfolio with the given id. Deleting an id that does
// not exist is not an error.
func (r *portfolioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Portfolio{}, id).Error
}
