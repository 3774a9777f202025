package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tinkerlab/internal/models"
	"tinkerlab/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock of the ProjectRepository interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCatalogTestServer(projectRepo *MockProjectRepository) *Server {
	return &Server{
		catalogService: service.NewCatalogService(projectRepo, nil, nil, nil),
	}
}

func TestGetProjects_FilterAndPaginate(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProjectRepository)
	s := newCatalogTestServer(mockRepo)
	app.Get("/projects", s.GetProjects)

	mockRepo.On("List", mock.Anything).Return([]models.Project{
		{ID: 1, Title: "Drone Nav", Description: "Waypoint navigation", Category: "aerospace", Difficulty: models.DifficultyAdvanced},
		{ID: 2, Title: "Weather Station", Description: "Log sensor data", Category: "electronics", Difficulty: models.DifficultyBeginner},
		{ID: 3, Title: "Hydraulic Arm", Description: "Syringe hydraulics", Category: "mechanical", Difficulty: models.DifficultyBeginner},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects?q=drone&difficulty=all", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page service.Page[models.Project]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Drone Nav", page.Items[0].Title)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Matched)
	assert.False(t, page.HasMore)

	mockRepo.AssertExpectations(t)
}

func TestGetProjects_FallbackWhenListFails(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProjectRepository)
	s := newCatalogTestServer(mockRepo)
	app.Get("/projects", s.GetProjects)

	mockRepo.On("List", mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page service.Page[models.Project]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.NotEmpty(t, page.Items)
}

func TestGetProject(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProjectRepository)
	s := newCatalogTestServer(mockRepo)
	app.Get("/projects/:id", s.GetProject)

	mockRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Project{
		ID: 5, Title: "Weather Station", Tags: models.StringList{},
	}, nil)
	mockRepo.On("IncrementViews", mock.Anything, uint(5)).Return(nil).Maybe()

	req := httptest.NewRequest(http.MethodGet, "/projects/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&project))
	assert.Equal(t, "Weather Station", project.Title)
}

func TestGetProject_NotFound(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProjectRepository)
	s := newCatalogTestServer(mockRepo)
	app.Get("/projects/:id", s.GetProject)

	mockRepo.On("GetByID", mock.Anything, uint(99)).
		Return(nil, models.NewNotFoundError("project", 99))

	req := httptest.NewRequest(http.MethodGet, "/projects/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProject_InternalErrorBodyIsSanitized(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProjectRepository)
	s := newCatalogTestServer(mockRepo)
	app.Get("/projects/:id", s.GetProject)

	mockRepo.On("GetByID", mock.Anything, uint(5)).
		Return(nil, errors.New(`pq: syntax error at or near "SELEC"; dial tcp 10.0.0.8:5432: connection refused`))

	req := httptest.NewRequest(http.MethodGet, "/projects/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Internal server error", errResp.Error)
	assert.Equal(t, "INTERNAL_ERROR", errResp.Code)
	assert.Empty(t, errResp.Details)
	assert.NotContains(t, string(body), "connection refused")
	assert.NotContains(t, string(body), "SELEC")
}

func TestGetProject_InvalidID(t *testing.T) {
	app := fiber.New()
	s := newCatalogTestServer(new(MockProjectRepository))
	app.Get("/projects/:id", s.GetProject)

	req := httptest.NewRequest(http.MethodGet, "/projects/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
