package repository

import (
	"context"

	"notebooks/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like record operations.
// Create has insert-if-absent semantics: the like ID is derived from the
// (postID, userID) pair, so a duplicate insert returns CONFLICT instead of
// creating a second record.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error)
	Delete(ctx context.Context, id string) error
	ListByPost(ctx context.Context, postID string) ([]*models.Like, error)
	PostIDsLikedBy(ctx context.Context, userID string, postIDs []string) ([]string, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return translateErr(r.db.WithContext(ctx).Create(like).Error, "Like", like.ID)
}

func (r *likeRepository) GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error) {
	var like models.Like
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				First(&like, "post_id = ? AND user_id = ?", postID, userID).Error,
			"Like", postID+"/"+userID)
	})
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Like{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "Like", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Like", id)
	}
	return nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID string) ([]*models.Like, error) {
	var likes []*models.Like
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				Where("post_id = ?", postID).
				Order("created_at DESC").
				Find(&likes).Error,
			"Like", postID)
	})
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// PostIDsLikedBy returns the subset of postIDs the user has liked. Used for
// batch liked-flag annotation of a feed page.
func (r *likeRepository) PostIDsLikedBy(ctx context.Context, userID string, postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var liked []string
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				Model(&models.Like{}).
				Where("user_id = ? AND post_id IN ?", userID, postIDs).
				Pluck("post_id", &liked).Error,
			"Like", userID)
	})
	if err != nil {
		return nil, err
	}
	return liked, nil
}
