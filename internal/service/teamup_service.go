package service

import (
	"context"
	"strings"

	"tinkerlab/internal/catalog"
	"tinkerlab/internal/middleware"
	"tinkerlab/internal/models"
	"tinkerlab/internal/repository"
)

// TeamUpService manages collaboration listings. Applying to a listing is an
// acknowledgment-only flow: the interest is logged, nothing is persisted.
type TeamUpService struct {
	repo repository.TeamUpRepository
}

func NewTeamUpService(repo repository.TeamUpRepository) *TeamUpService {
	return &TeamUpService{repo: repo}
}

type ApplyInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

type ApplyResult struct {
	ListingID uint   `json:"listing_id"`
	Message   string `json:"message"`
}

func listingKeys(l models.TeamUpListing) catalog.Keys {
	return catalog.Keys{Title: l.Title, Description: l.Description, Difficulty: l.Difficulty}
}

// Browse renders the team-up board through the shared retrieval pipeline.
// Listings have no category facet; the query and difficulty filters apply.
func (s *TeamUpService) Browse(ctx context.Context, f catalog.Filters, visible int) (Page[models.TeamUpListing], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return Page[models.TeamUpListing]{}, err
	}
	return page(rows, f, visible, listingKeys), nil
}

func (s *TeamUpService) Get(ctx context.Context, id uint) (*models.TeamUpListing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TeamUpService) Create(ctx context.Context, listing *models.TeamUpListing) error {
	if err := listing.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, listing)
}

func (s *TeamUpService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Apply records interest in a listing. The listing must exist; the applicant
// gets a confirmation message and the owner is expected to follow up out of
// band.
func (s *TeamUpService) Apply(ctx context.Context, listingID uint, input ApplyInput) (*ApplyResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Contact) == "" {
		return nil, models.NewValidationError("Name and contact are required")
	}

	listing, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "team-up application received",
		"listing_id", listing.ID,
		"listing_title", listing.Title,
		"applicant", input.Name,
	)

	return &ApplyResult{
		ListingID: listing.ID,
		Message:   "Thanks for applying! The listing owner will reach out to you.",
	}, nil
}
