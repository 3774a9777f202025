package repository

import (
	"context"

	"gorm.io/gorm"

	"tinkerlab/internal/cache"
	"tinkerlab/internal/models"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

type gormProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := cache.Aside(ctx, cache.ProjectsListKey, &projects, cache.ListTTL, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	})
	return projects, err
}

func (r *gormProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := cache.Aside(ctx, cache.ProjectKey(id), &project, cache.DetailTTL, func() error {
		return r.db.WithContext(ctx).First(&project, id).Error
	})
	if err != nil {
		return nil, translateError(err, "project", id)
	}
	return &project, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return translateError(err, "project", project.ID)
	}
	cache.InvalidateProject(ctx, project.ID)
	return nil
}

func (r *gormProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return translateError(err, "project", project.ID)
	}
	cache.InvalidateProject(ctx, project.ID)
	return nil
}

func (r *gormProjectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return translateError(result.Error, "project", id)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("project", id)
	}
	cache.InvalidateProject(ctx, id)
	return nil
}

// IncrementViews bumps the counter in place. Detail caches keep the old
// number until their TTL expires, which is acceptable for a view counter.
func (r *gormProjectRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
