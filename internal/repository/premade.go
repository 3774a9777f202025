package repository

import (
	"context"

	"gorm.io/gorm"

	"tinkerlab/internal/cache"
	"tinkerlab/internal/models"
)

type PremadeProjectRepository interface {
	List(ctx context.Context) ([]models.PremadeProject, error)
	GetByID(ctx context.Context, id uint) (*models.PremadeProject, error)
	Create(ctx context.Context, project *models.PremadeProject) error
	Update(ctx context.Context, project *models.PremadeProject) error
	Delete(ctx context.Context, id uint) error
}

type gormPremadeProjectRepository struct {
	db *gorm.DB
}

func NewPremadeProjectRepository(db *gorm.DB) PremadeProjectRepository {
	return &gormPremadeProjectRepository{db: db}
}

func (r *gormPremadeProjectRepository) List(ctx context.Context) ([]models.PremadeProject, error) {
	projects := []models.PremadeProject{}
	err := cache.Aside(ctx, cache.PremadeListKey, &projects, cache.ListTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	})
	return projects, err
}

func (r *gormPremadeProjectRepository) GetByID(ctx context.Context, id uint) (*models.PremadeProject, error) {
	var project models.PremadeProject
	err := cache.Aside(ctx, cache.PremadeKey(id), &project, cache.DetailTTL, func() error {
		return r.db.WithContext(ctx).First(&project, id).Error
	})
	if err != nil {
		return nil, translateError(err, "premade project", id)
	}
	return &project, nil
}

func (r *gormPremadeProjectRepository) Create(ctx context.Context, project *models.PremadeProject) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return translateError(err, "premade project", project.ID)
	}
	cache.InvalidatePremade(ctx, project.ID)
	return nil
}

func (r *gormPremadeProjectRepository) Update(ctx context.Context, project *models.PremadeProject) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return translateError(err, "premade project", project.ID)
	}
	cache.InvalidatePremade(ctx, project.ID)
	return nil
}

func (r *gormPremadeProjectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PremadeProject{}, id)
	if result.Error != nil {
		return translateError(result.Error, "premade project", id)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("premade project", id)
	}
	cache.InvalidatePremade(ctx, id)
	return nil
}
