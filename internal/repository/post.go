package repository

import (
	"context"

	"notebooks/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	AddLikeCount(ctx context.Context, id string, delta int) error
	AddCommentCount(ctx context.Context, id string, delta int) error
	IncrementReportCount(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return translateErr(r.db.WithContext(ctx).Create(post).Error, "Post", post.ID)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).First(&post, "id = ?", id).Error,
			"Post", id)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListRecent fetches a page of posts ordered by creation time descending.
// Offset pagination can skip or duplicate posts when rows are inserted
// between page fetches; that is an accepted limitation of the feed contract,
// not something this layer papers over.
func (r *postRepository) ListRecent(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				Order("created_at DESC").
				Limit(limit).
				Offset(offset).
				Find(&posts).Error,
			"Post", "")
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return translateErr(r.db.WithContext(ctx).Save(post).Error, "Post", post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "Post", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

// AddLikeCount applies a like-count delta as a single atomic UPDATE, floored
// at zero. The record write is the atomic unit here: concurrent deltas are
// serialized by the store's per-row atomicity instead of a read-modify-write
// in application code.
func (r *postRepository) AddLikeCount(ctx context.Context, id string, delta int) error {
	return r.addCounter(ctx, id, "like_count", delta)
}

// AddCommentCount applies a comment-count delta, floored at zero.
func (r *postRepository) AddCommentCount(ctx context.Context, id string, delta int) error {
	return r.addCounter(ctx, id, "comment_count", delta)
}

// IncrementReportCount bumps the report counter by one. The resulting value
// is observed by re-reading the post; the moderation cascade tolerates two
// racing reports both observing the threshold.
func (r *postRepository) IncrementReportCount(ctx context.Context, id string) error {
	return r.addCounter(ctx, id, "report_count", 1)
}

func (r *postRepository) addCounter(ctx context.Context, id, column string, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(
			"CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END",
			delta, delta))
	if res.Error != nil {
		return translateErr(res.Error, "Post", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}
