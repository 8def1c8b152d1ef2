package service

import (
	"context"
	"sort"

	"notebooks/internal/cache"
	"notebooks/internal/media"
	"notebooks/internal/models"
	"notebooks/internal/observability"
	"notebooks/internal/repository"
)

// FeedService assembles the home feed: a page of recent posts annotated for
// the requesting viewer and rewritten for CDN delivery.
type FeedService struct {
	postRepo   repository.PostRepository
	likeRepo   repository.LikeRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	rewriter   *media.Rewriter
}

type GetFeedInput struct {
	ViewerID string
	Page     int
	PageSize int
}

func NewFeedService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	rewriter *media.Rewriter,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		likeRepo:   likeRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		rewriter:   rewriter,
	}
}

// GetFeed returns one feed page. Pages are 1-based offset windows over posts
// ordered by creation time; a window past the end is an empty list, not an
// error. Any storage failure aborts the whole request rather than returning
// a partial page.
func (s *FeedService) GetFeed(ctx context.Context, in GetFeedInput) ([]*models.Post, error) {
	ctx, span := observability.StartServiceSpan(ctx, "FeedService", "GetFeed")
	defer span.End()

	if in.Page < 1 {
		return nil, models.NewValidationError("page must be >= 1")
	}
	if in.PageSize < 1 {
		return nil, models.NewValidationError("pageSize must be >= 1")
	}

	posts, err := s.fetchPage(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []*models.Post{}, nil
	}

	if in.ViewerID != "" {
		if err := s.annotateLikes(ctx, posts, in.ViewerID); err != nil {
			return nil, err
		}
		posts, err = s.dropReportedByViewer(ctx, posts, in.ViewerID)
		if err != nil {
			return nil, err
		}
	}

	rankPosts(posts)

	if err := s.annotateVerification(ctx, posts); err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.ContentURL = s.rewriter.Rewrite(p.ContentURL)
	}
	return posts, nil
}

// fetchPage reads one offset window of posts. Anonymous pages are served
// cache-aside; personalized annotations make viewer pages uncacheable.
func (s *FeedService) fetchPage(ctx context.Context, in GetFeedInput) ([]*models.Post, error) {
	offset := (in.Page - 1) * in.PageSize

	if in.ViewerID == "" && in.PageSize <= 50 {
		var posts []*models.Post
		key := cache.FeedPageKey(in.Page, in.PageSize)
		err := cache.Aside(ctx, key, &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.ListRecent(ctx, in.PageSize, offset)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		return posts, nil
	}

	return s.postRepo.ListRecent(ctx, in.PageSize, offset)
}

func (s *FeedService) annotateLikes(ctx context.Context, posts []*models.Post, viewerID string) error {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	likedIDs, err := s.likeRepo.PostIDsLikedBy(ctx, viewerID, ids)
	if err != nil {
		return err
	}
	liked := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = true
	}
	for _, p := range posts {
		p.Liked = liked[p.ID]
	}
	return nil
}

// dropReportedByViewer removes posts the viewer has reported. The report
// lookup only runs when the page actually contains reported posts, which is
// the common case's fast path.
func (s *FeedService) dropReportedByViewer(ctx context.Context, posts []*models.Post, viewerID string) ([]*models.Post, error) {
	anyReported := false
	for _, p := range posts {
		if p.ReportCount > 0 {
			anyReported = true
			break
		}
	}
	if !anyReported {
		return posts, nil
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	reportedIDs, err := s.reportRepo.PostIDsReportedBy(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	if len(reportedIDs) == 0 {
		return posts, nil
	}

	reported := make(map[string]bool, len(reportedIDs))
	for _, id := range reportedIDs {
		reported[id] = true
	}
	kept := posts[:0]
	for _, p := range posts {
		if !reported[p.ID] {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (s *FeedService) annotateVerification(ctx context.Context, posts []*models.Post) error {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}
	verified, err := s.userRepo.VerifiedByIDs(ctx, ids)
	if err != nil {
		return err
	}
	// Authors missing from the directory read as unverified.
	for _, p := range posts {
		p.AuthorVerified = verified[p.AuthorID]
	}
	return nil
}

// rankPosts orders a page newest first, breaking creation-time ties by like
// count then comment count. The sort is stable so equally-ranked posts keep
// their storage order.
func rankPosts(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.LikeCount != b.LikeCount {
			return a.LikeCount > b.LikeCount
		}
		return a.CommentCount > b.CommentCount
	})
}
