package service

import (
	"context"
	"strings"

	"tinkerlab/internal/catalog"
	"tinkerlab/internal/middleware"
	"tinkerlab/internal/models"
	"tinkerlab/internal/repository"
	"tinkerlab/internal/seed"
)

// Page is one rendered slice of a catalog surface: the visible rows plus the
// counts the client needs to decide whether a "load more" action remains.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Matched int  `json:"matched"`
	Visible int  `json:"visible"`
	HasMore bool `json:"has_more"`
}

// CatalogService runs the retrieval pipeline for every catalog surface:
// fetch the full row set, derive the filtered view, then cut it to the
// visible-count threshold.
type CatalogService struct {
	projects  repository.ProjectRepository
	premade   repository.PremadeProjectRepository
	tutorials repository.TutorialRepository
	community repository.CommunityRepository
}

func NewCatalogService(
	projects repository.ProjectRepository,
	premade repository.PremadeProjectRepository,
	tutorials repository.TutorialRepository,
	community repository.CommunityRepository,
) *CatalogService {
	return &CatalogService{
		projects:  projects,
		premade:   premade,
		tutorials: tutorials,
		community: community,
	}
}

func page[T any](rows []T, f catalog.Filters, visible int, keys func(T) catalog.Keys) Page[T] {
	visible = catalog.ClampVisible(visible)
	view := catalog.DeriveView(rows, f, keys)
	items := catalog.Paginate(view, visible)
	return Page[T]{
		Items:   items,
		Total:   len(rows),
		Matched: len(view),
		Visible: visible,
		HasMore: len(view) > len(items),
	}
}

func projectKeys(p models.Project) catalog.Keys {
	return catalog.Keys{Title: p.Title, Description: p.Description, Category: p.Category, Difficulty: p.Difficulty}
}

func premadeKeys(p models.PremadeProject) catalog.Keys {
	return catalog.Keys{Title: p.Title, Description: p.Description, Category: p.Category, Difficulty: p.Difficulty}
}

func tutorialKeys(t models.Tutorial) catalog.Keys {
	return catalog.Keys{Title: t.Title, Description: t.Description, Category: t.Category, Difficulty: t.Difficulty}
}

func postKeys(p models.CommunityPost) catalog.Keys {
	return catalog.Keys{Title: p.Title, Description: p.Content, Category: p.Category}
}

// BrowseProjects renders the projects surface. If the table cannot be read it
// serves the built-in sample instead of an error so the page stays useful
// during an outage.
func (s *CatalogService) BrowseProjects(ctx context.Context, f catalog.Filters, visible int) (Page[models.Project], error) {
	rows, err := s.projects.List(ctx)
	if err != nil {
		middleware.CatalogFallbacks.WithLabelValues("projects").Inc()
		middleware.Logger.WarnContext(ctx, "projects list unavailable, serving fallback sample", "error", err)
		rows = seed.FallbackProjects()
	}
	return page(rows, f, visible, projectKeys), nil
}

func (s *CatalogService) BrowsePremade(ctx context.Context, f catalog.Filters, visible int) (Page[models.PremadeProject], error) {
	rows, err := s.premade.List(ctx)
	if err != nil {
		return Page[models.PremadeProject]{}, err
	}
	return page(rows, f, visible, premadeKeys), nil
}

func (s *CatalogService) BrowseTutorials(ctx context.Context, f catalog.Filters, visible int) (Page[models.Tutorial], error) {
	rows, err := s.tutorials.List(ctx)
	if err != nil {
		return Page[models.Tutorial]{}, err
	}
	return page(rows, f, visible, tutorialKeys), nil
}

func (s *CatalogService) BrowseCommunity(ctx context.Context, f catalog.Filters, visible int) (Page[models.CommunityPost], error) {
	rows, err := s.community.ListPosts(ctx)
	if err != nil {
		return Page[models.CommunityPost]{}, err
	}
	return page(rows, f, visible, postKeys), nil
}

func (s *CatalogService) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.ListFeatured(ctx)
}

// GetProject returns one project and bumps its view counter without holding
// up the response. The increment survives request cancellation.
func (s *CatalogService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	go func(ctx context.Context) {
		if err := s.projects.IncrementViews(ctx, id); err != nil {
			middleware.Logger.DebugContext(ctx, "view increment failed", "project_id", id, "error", err)
		}
	}(context.WithoutCancel(ctx))
	return project, nil
}

func (s *CatalogService) GetPremade(ctx context.Context, id uint) (*models.PremadeProject, error) {
	return s.premade.GetByID(ctx, id)
}

type PurchaseInterestInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type PurchaseInterestResult struct {
	KitID   uint   `json:"kit_id"`
	Message string `json:"message"`
}

// RegisterPurchaseInterest records a buyer's interest in a premade kit. There
// is no checkout; the interest is logged and acknowledged, nothing persisted.
func (s *CatalogService) RegisterPurchaseInterest(ctx context.Context, id uint, input PurchaseInterestInput) (*PurchaseInterestResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Contact) == "" {
		return nil, models.NewValidationError("Name and contact are required")
	}

	kit, err := s.premade.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "purchase interest received",
		"kit_id", kit.ID,
		"kit_title", kit.Title,
		"buyer", input.Name,
	)

	return &PurchaseInterestResult{
		KitID:   kit.ID,
		Message: "Thanks for your interest! We'll contact you with ordering details.",
	}, nil
}

func (s *CatalogService) GetTutorial(ctx context.Context, id uint) (*models.Tutorial, error) {
	return s.tutorials.GetByID(ctx, id)
}

func (s *CatalogService) CreateProject(ctx context.Context, project *models.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, project)
}

func (s *CatalogService) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return s.projects.Update(ctx, project)
}

func (s *CatalogService) DeleteProject(ctx context.Context, id uint) error {
	return s.projects.Delete(ctx, id)
}

func (s *CatalogService) CreatePremade(ctx context.Context, project *models.PremadeProject) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return s.premade.Create(ctx, project)
}

func (s *CatalogService) UpdatePremade(ctx context.Context, project *models.PremadeProject) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return s.premade.Update(ctx, project)
}

func (s *CatalogService) DeletePremade(ctx context.Context, id uint) error {
	return s.premade.Delete(ctx, id)
}

func (s *CatalogService) CreateTutorial(ctx context.Context, tutorial *models.Tutorial) error {
	if err := tutorial.Validate(); err != nil {
		return err
	}
	return s.tutorials.Create(ctx, tutorial)
}

func (s *CatalogService) UpdateTutorial(ctx context.Context, tutorial *models.Tutorial) error {
	if err := tutorial.Validate(); err != nil {
		return err
	}
	return s.tutorials.Update(ctx, tutorial)
}

func (s *CatalogService) DeleteTutorial(ctx context.Context, id uint) error {
	return s.tutorials.Delete(ctx, id)
}
