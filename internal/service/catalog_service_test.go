package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tinkerlab/internal/catalog"
	"tinkerlab/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectRepoStub is a stub for repository.ProjectRepository.
type projectRepoStub struct {
	listFn           func(context.Context) ([]models.Project, error)
	listFeaturedFn   func(context.Context) ([]models.Project, error)
	getByIDFn        func(context.Context, uint) (*models.Project, error)
	createFn         func(context.Context, *models.Project) error
	updateFn         func(context.Context, *models.Project) error
	deleteFn         func(context.Context, uint) error
	incrementViewsFn func(context.Context, uint) error
}

func (s *projectRepoStub) List(ctx context.Context) ([]models.Project, error) {
	return s.listFn(ctx)
}
func (s *projectRepoStub) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return s.listFeaturedFn(ctx)
}
func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.getByIDFn(ctx, id)
}
func (s *projectRepoStub) Create(ctx context.Context, p *models.Project) error {
	return s.createFn(ctx, p)
}
func (s *projectRepoStub) Update(ctx context.Context, p *models.Project) error {
	return s.updateFn(ctx, p)
}
func (s *projectRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *projectRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		listFn:           func(context.Context) ([]models.Project, error) { return nil, nil },
		listFeaturedFn:   func(context.Context) ([]models.Project, error) { return nil, nil },
		getByIDFn:        func(context.Context, uint) (*models.Project, error) { return &models.Project{}, nil },
		createFn:         func(context.Context, *models.Project) error { return nil },
		updateFn:         func(context.Context, *models.Project) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		incrementViewsFn: func(context.Context, uint) error { return nil },
	}
}

func sampleProjects(n int) []models.Project {
	projects := make([]models.Project, 0, n)
	for i := 1; i <= n; i++ {
		projects = append(projects, models.Project{
			ID:          uint(i),
			Title:       fmt.Sprintf("Project %d", i),
			Description: "A build",
			Category:    "electronics",
			Difficulty:  models.DifficultyBeginner,
		})
	}
	return projects
}

func newCatalogServiceWithProjects(repo *projectRepoStub) *CatalogService {
	return NewCatalogService(repo, nil, nil, nil)
}

func TestCatalogService_BrowseProjects_Pagination(t *testing.T) {
	t.Parallel()

	repo := noopProjectRepo()
	repo.listFn = func(context.Context) ([]models.Project, error) { return sampleProjects(45), nil }
	svc := newCatalogServiceWithProjects(repo)
	ctx := context.Background()

	first, err := svc.BrowseProjects(ctx, catalog.Filters{}, 0)
	require.NoError(t, err)
	assert.Len(t, first.Items, 20)
	assert.Equal(t, 45, first.Matched)
	assert.True(t, first.HasMore)

	second, err := svc.BrowseProjects(ctx, catalog.Filters{}, catalog.NextVisible(first.Visible))
	require.NoError(t, err)
	assert.Len(t, second.Items, 30)
	assert.True(t, second.HasMore)

	// Earlier pages stay a prefix of later ones.
	assert.Equal(t, first.Items, second.Items[:20])
}

func TestCatalogService_BrowseProjects_Filtered(t *testing.T) {
	t.Parallel()

	repo := noopProjectRepo()
	repo.listFn = func(context.Context) ([]models.Project, error) {
		return []models.Project{
			{ID: 1, Title: "Drone Nav", Description: "Waypoints", Category: "aerospace", Difficulty: models.DifficultyAdvanced},
			{ID: 2, Title: "Weather Station", Description: "Sensors", Category: "electronics", Difficulty: models.DifficultyBeginner},
		}, nil
	}
	svc := newCatalogServiceWithProjects(repo)

	page, err := svc.BrowseProjects(context.Background(), catalog.Filters{Query: "drone"}, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Drone Nav", page.Items[0].Title)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Matched)
}

func TestCatalogService_BrowseProjects_FallbackOnError(t *testing.T) {
	t.Parallel()

	repo := noopProjectRepo()
	repo.listFn = func(context.Context) ([]models.Project, error) {
		return nil, errors.New("connection refused")
	}
	svc := newCatalogServiceWithProjects(repo)

	page, err := svc.BrowseProjects(context.Background(), catalog.Filters{}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, page.Items, "fallback sample should render instead of an error")
}

func TestCatalogService_BrowsePremade_ErrorPropagates(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(nil, &premadeRepoStub{
		listFn: func(context.Context) ([]models.PremadeProject, error) {
			return nil, errors.New("connection refused")
		},
	}, nil, nil)

	_, err := svc.BrowsePremade(context.Background(), catalog.Filters{}, 0)
	assert.Error(t, err)
}

func TestCatalogService_RegisterPurchaseInterest(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(nil, &premadeRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.PremadeProject, error) {
			if id != 3 {
				return nil, models.NewNotFoundError("premade project", id)
			}
			return &models.PremadeProject{ID: 3, Title: "Rover Kit"}, nil
		},
	}, nil, nil)

	t.Run("acknowledges interest", func(t *testing.T) {
		result, err := svc.RegisterPurchaseInterest(context.Background(), 3,
			PurchaseInterestInput{Name: "Sam", Contact: "sam@example.com"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), result.KitID)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("requires name and contact", func(t *testing.T) {
		_, err := svc.RegisterPurchaseInterest(context.Background(), 3,
			PurchaseInterestInput{Name: "Sam"})
		assertValidationError(t, err)
	})

	t.Run("missing kit", func(t *testing.T) {
		_, err := svc.RegisterPurchaseInterest(context.Background(), 99,
			PurchaseInterestInput{Name: "Sam", Contact: "sam@example.com"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestCatalogService_CreateProject_Validation(t *testing.T) {
	t.Parallel()

	svc := newCatalogServiceWithProjects(noopProjectRepo())
	err := svc.CreateProject(context.Background(), &models.Project{Title: "No description"})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// premadeRepoStub is a stub for repository.PremadeProjectRepository.
type premadeRepoStub struct {
	listFn    func(context.Context) ([]models.PremadeProject, error)
	getByIDFn func(context.Context, uint) (*models.PremadeProject, error)
	createFn  func(context.Context, *models.PremadeProject) error
	updateFn  func(context.Context, *models.PremadeProject) error
	deleteFn  func(context.Context, uint) error
}

func (s *premadeRepoStub) List(ctx context.Context) ([]models.PremadeProject, error) {
	return s.listFn(ctx)
}
func (s *premadeRepoStub) GetByID(ctx context.Context, id uint) (*models.PremadeProject, error) {
	return s.getByIDFn(ctx, id)
}
func (s *premadeRepoStub) Create(ctx context.Context, p *models.PremadeProject) error {
	return s.createFn(ctx, p)
}
func (s *premadeRepoStub) Update(ctx context.Context, p *models.PremadeProject) error {
	return s.updateFn(ctx, p)
}
func (s *premadeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
