package repository

import (
	"context"

	"gorm.io/gorm"

	"tinkerlab/internal/cache"
	"tinkerlab/internal/models"
)

type TeamUpRepository interface {
	List(ctx context.Context) ([]models.TeamUpListing, error)
	GetByID(ctx context.Context, id uint) (*models.TeamUpListing, error)
	Create(ctx context.Context, listing *models.TeamUpListing) error
	Delete(ctx context.Context, id uint) error
}

type gormTeamUpRepository struct {
	db *gorm.DB
}

func NewTeamUpRepository(db *gorm.DB) TeamUpRepository {
	return &gormTeamUpRepository{db: db}
}

func (r *gormTeamUpRepository) List(ctx context.Context) ([]models.TeamUpListing, error) {
	listings := []models.TeamUpListing{}
	err := cache.Aside(ctx, cache.TeamUpListKey, &listings, cache.ListTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&listings).Error
	})
	return listings, err
}

func (r *gormTeamUpRepository) GetByID(ctx context.Context, id uint) (*models.TeamUpListing, error) {
	var listing models.TeamUpListing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, translateError(err, "listing", id)
	}
	return &listing, nil
}

func (r *gormTeamUpRepository) Create(ctx context.Context, listing *models.TeamUpListing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return translateError(err, "listing", listing.ID)
	}
	cache.InvalidateTeamUp(ctx)
	return nil
}

func (r *gormTeamUpRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamUpListing{}, id)
	if result.Error != nil {
		return translateError(result.Error, "listing", id)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("listing", id)
	}
	cache.InvalidateTeamUp(ctx)
	return nil
}
