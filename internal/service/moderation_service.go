package service

import (
	"context"
	"log/slog"
	"strings"

	"notebooks/internal/cache"
	"notebooks/internal/id"
	"notebooks/internal/media"
	"notebooks/internal/middleware"
	"notebooks/internal/models"
	"notebooks/internal/observability"
	"notebooks/internal/repository"
)

// ReportThreshold is the report count at which a post is removed.
const ReportThreshold = 3

// ModerationService handles post reports and the removal cascade that fires
// when a post accumulates enough of them.
type ModerationService struct {
	postRepo   repository.PostRepository
	reportRepo repository.ReportRepository
	mediaStore media.Store
}

// ReportPostResult is the outcome of filing a report.
type ReportPostResult struct {
	ReportCount int  `json:"report_count"`
	Removed     bool `json:"removed"`
}

func NewModerationService(
	postRepo repository.PostRepository,
	reportRepo repository.ReportRepository,
	mediaStore media.Store,
) *ModerationService {
	return &ModerationService{
		postRepo:   postRepo,
		reportRepo: reportRepo,
		mediaStore: mediaStore,
	}
}

// ReportPost files reporterID's report against postID. The report counter is
// bumped first; if the new count reaches the threshold the post is removed
// (media, record, accumulated reports) and the triggering report is never
// persisted. Below the threshold the report record is stored. A reporter who
// already has a report on file does not move the counter again.
func (s *ModerationService) ReportPost(ctx context.Context, postID, reporterID, reason string) (*ReportPostResult, error) {
	if postID == "" {
		return nil, models.NewValidationError("post_id is required")
	}
	if reporterID == "" {
		return nil, models.NewValidationError("reporter_id is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, models.NewValidationError("reason is required")
	}

	// A repeat report from the same reporter is a no-op: the counter already
	// reflects it, so return the current count untouched.
	if _, err := s.reportRepo.GetByPostAndReporter(ctx, postID, reporterID); err == nil {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		return &ReportPostResult{ReportCount: post.ReportCount, Removed: false}, nil
	} else if !models.IsCode(err, models.CodeNotFound) {
		return nil, err
	}

	if err := s.postRepo.IncrementReportCount(ctx, postID); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	middleware.PostReports.Inc()

	if post.ReportCount >= ReportThreshold {
		if err := s.removePost(ctx, post); err != nil {
			return nil, err
		}
		return &ReportPostResult{ReportCount: post.ReportCount, Removed: true}, nil
	}

	report := &models.ReportedPost{
		ID:         id.New(),
		PostID:     postID,
		ReporterID: reporterID,
		Reason:     reason,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return &ReportPostResult{ReportCount: post.ReportCount, Removed: false}, nil
}

// removePost runs the removal cascade: media object, post record, then the
// post's report records. The media delete is best-effort; the record deletes
// tolerate NOT_FOUND, which means a concurrent cascade got there first.
func (s *ModerationService) removePost(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartServiceSpan(ctx, "ModerationService", "removePost")
	defer span.End()

	if err := s.mediaStore.DeleteObject(ctx, post.ContentURL); err != nil {
		observability.RecordError(ctx, err)
		middleware.MediaDeleteFailures.Inc()
		slog.WarnContext(ctx, "media delete failed during removal cascade",
			slog.String("post_id", post.ID),
			slog.String("content_url", post.ContentURL),
			slog.String("error", err.Error()),
		)
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil && !models.IsCode(err, models.CodeNotFound) {
		return err
	}
	if err := s.reportRepo.DeleteByPost(ctx, post.ID); err != nil && !models.IsCode(err, models.CodeNotFound) {
		return err
	}

	middleware.CascadeDeletions.Inc()
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	slog.InfoContext(ctx, "post removed after crossing report threshold",
		slog.String("post_id", post.ID),
		slog.Int("report_count", post.ReportCount),
	)
	return nil
}
