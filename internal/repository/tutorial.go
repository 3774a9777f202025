package repository

import (
	"context"

	"gorm.io/gorm"

	"tinkerlab/internal/cache"
	"tinkerlab/internal/models"
)

type TutorialRepository interface {
	List(ctx context.Context) ([]models.Tutorial, error)
	GetByID(ctx context.Context, id uint) (*models.Tutorial, error)
	Create(ctx context.Context, tutorial *models.Tutorial) error
	Update(ctx context.Context, tutorial *models.Tutorial) error
	Delete(ctx context.Context, id uint) error
}

type gormTutorialRepository struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &gormTutorialRepository{db: db}
}

func (r *gormTutorialRepository) List(ctx context.Context) ([]models.Tutorial, error) {
	tutorials := []models.Tutorial{}
	err := cache.Aside(ctx, cache.TutorialsListKey, &tutorials, cache.ListTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&tutorials).Error
	})
	return tutorials, err
}

func (r *gormTutorialRepository) GetByID(ctx context.Context, id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	err := cache.Aside(ctx, cache.TutorialKey(id), &tutorial, cache.DetailTTL, func() error {
		return r.db.WithContext(ctx).First(&tutorial, id).Error
	})
	if err != nil {
		return nil, translateError(err, "tutorial", id)
	}
	return &tutorial, nil
}

func (r *gormTutorialRepository) Create(ctx context.Context, tutorial *models.Tutorial) error {
	if err := r.db.WithContext(ctx).Create(tutorial).Error; err != nil {
		return translateError(err, "tutorial", tutorial.ID)
	}
	cache.InvalidateTutorial(ctx, tutorial.ID)
	return nil
}

func (r *gormTutorialRepository) Update(ctx context.Context, tutorial *models.Tutorial) error {
	if err := r.db.WithContext(ctx).Save(tutorial).Error; err != nil {
		return translateError(err, "tutorial", tutorial.ID)
	}
	cache.InvalidateTutorial(ctx, tutorial.ID)
	return nil
}

func (r *gormTutorialRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tutorial{}, id)
	if result.Error != nil {
		return translateError(result.Error, "tutorial", id)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("tutorial", id)
	}
	cache.InvalidateTutorial(ctx, id)
	return nil
}
