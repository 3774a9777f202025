package service

import (
	"context"

	"tinkerlab/internal/models"
	"tinkerlab/internal/repository"
)

// CommunityService wraps the community feed and its comment threads.
type CommunityService struct {
	repo repository.CommunityRepository
}

func NewCommunityService(repo repository.CommunityRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) GetPost(ctx context.Context, id uint) (*models.CommunityPost, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *CommunityService) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	if err := post.Validate(); err != nil {
		return err
	}
	return s.repo.CreatePost(ctx, post)
}

func (s *CommunityService) DeletePost(ctx context.Context, id uint) error {
	return s.repo.DeletePost(ctx, id)
}

func (s *CommunityService) ListComments(ctx context.Context, postID uint) ([]models.CommunityComment, error) {
	return s.repo.ListComments(ctx, postID)
}

func (s *CommunityService) AddComment(ctx context.Context, comment *models.CommunityComment) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	return s.repo.CreateComment(ctx, comment)
}
