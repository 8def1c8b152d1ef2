package repository

import (
	"context"

	"notebooks/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines interface for user directory operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	VerifiedByIDs(ctx context.Context, ids []string) (map[string]bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).First(&user, "id = ?", id).Error,
			"User", id)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	return translateErr(
		r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"username", "verified", "updated_at"}),
			}).
			Create(user).Error,
		"User", user.ID)
}

// VerifiedByIDs batch-resolves verification flags for a set of author IDs.
// IDs without a directory entry are absent from the map and read as false.
func (r *userRepository) VerifiedByIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	out := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				Select("id", "verified").
				Where("id IN ?", ids).
				Find(&users).Error,
			"User", "")
	})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Verified
	}
	return out, nil
}
