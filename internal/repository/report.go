package repository

import (
	"context"

	"notebooks/internal/models"

	"gorm.io/gorm"
)

// ReportRepository defines interface for post report operations
type ReportRepository interface {
	Create(ctx context.Context, report *models.ReportedPost) error
	GetByPostAndReporter(ctx context.Context, postID, reporterID string) (*models.ReportedPost, error)
	PostIDsReportedBy(ctx context.Context, reporterID string, postIDs []string) ([]string, error)
	DeleteByPost(ctx context.Context, postID string) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.ReportedPost) error {
	return translateErr(r.db.WithContext(ctx).Create(report).Error, "Report", report.ID)
}

func (r *reportRepository) GetByPostAndReporter(ctx context.Context, postID, reporterID string) (*models.ReportedPost, error) {
	var report models.ReportedPost
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				First(&report, "post_id = ? AND reporter_id = ?", postID, reporterID).Error,
			"Report", postID)
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// PostIDsReportedBy returns the subset of postIDs the reporter has reported.
func (r *reportRepository) PostIDsReportedBy(ctx context.Context, reporterID string, postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := withReadRetry(ctx, func() error {
		return translateErr(
			r.db.WithContext(ctx).
				Model(&models.ReportedPost{}).
				Where("reporter_id = ? AND post_id IN ?", reporterID, postIDs).
				Pluck("post_id", &ids).Error,
			"Report", reporterID)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByPost removes all reports filed against a post. Deleting zero rows
// is not an error: a post can be removed before any report lands.
func (r *reportRepository) DeleteByPost(ctx context.Context, postID string) error {
	return translateErr(
		r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.ReportedPost{}).Error,
		"Report", postID)
}
