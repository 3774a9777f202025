package repository

import (
	"context"

	"gorm.io/gorm"

	"tinkerlab/internal/cache"
	"tinkerlab/internal/models"
)

type CommunityRepository interface {
	ListPosts(ctx context.Context) ([]models.CommunityPost, error)
	GetPost(ctx context.Context, id uint) (*models.CommunityPost, error)
	CreatePost(ctx context.Context, post *models.CommunityPost) error
	DeletePost(ctx context.Context, id uint) error
	ListComments(ctx context.Context, postID uint) ([]models.CommunityComment, error)
	CreateComment(ctx context.Context, comment *models.CommunityComment) error
}

type gormCommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &gormCommunityRepository{db: db}
}

// withCommentsCount attaches the real comment count to each post row so the
// feed never has to invent one.
func (r *gormCommunityRepository) withCommentsCount(ctx context.Context) *gorm.DB {
	sub := r.db.WithContext(ctx).
		Model(&models.CommunityComment{}).
		Select("COUNT(*)").
		Where("community_comments.post_id = community_posts.id")
	return r.db.WithContext(ctx).
		Model(&models.CommunityPost{}).
		Select("community_posts.*, (?) AS comments_count", sub)
}

func (r *gormCommunityRepository) ListPosts(ctx context.Context) ([]models.CommunityPost, error) {
	posts := []models.CommunityPost{}
	err := cache.Aside(ctx, cache.CommunityListKey, &posts, cache.ListTTL, func() error {
		return r.withCommentsCount(ctx).Order("created_at DESC").Find(&posts).Error
	})
	return posts, err
}

func (r *gormCommunityRepository) GetPost(ctx context.Context, id uint) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := r.withCommentsCount(ctx).Where("community_posts.id = ?", id).First(&post).Error
	if err != nil {
		return nil, translateError(err, "post", id)
	}
	return &post, nil
}

func (r *gormCommunityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return translateError(err, "post", post.ID)
	}
	cache.InvalidateCommunity(ctx)
	return nil
}

func (r *gormCommunityRepository) DeletePost(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CommunityPost{}, id)
	if result.Error != nil {
		return translateError(result.Error, "post", id)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("post", id)
	}
	cache.InvalidateCommunity(ctx)
	return nil
}

func (r *gormCommunityRepository) ListComments(ctx context.Context, postID uint) ([]models.CommunityComment, error) {
	comments := []models.CommunityComment{}
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *gormCommunityRepository) CreateComment(ctx context.Context, comment *models.CommunityComment) error {
	// A comment against a missing post answers 404, not a constraint 500.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommunityPost{}).
		Where("id = ?", comment.PostID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.NewNotFoundError("post", comment.PostID)
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return translateError(err, "comment", comment.PostID)
	}
	cache.InvalidateCommunity(ctx)
	return nil
}
