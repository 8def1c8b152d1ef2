package service

import (
	"context"
	"net/url"
	"strings"

	"notebooks/internal/cache"
	"notebooks/internal/id"
	"notebooks/internal/media"
	"notebooks/internal/models"
	"notebooks/internal/repository"
)

// PostService manages the post lifecycle and the like toggle.
type PostService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	rewriter *media.Rewriter
}

type CreatePostInput struct {
	AuthorID   string
	AuthorName string
	ContentURL string
	Caption    string
}

type UpdatePostInput struct {
	PostID   string
	AuthorID string
	Caption  string
}

// ToggleLikeResult reports the outcome of a like toggle: whether the viewer
// now likes the post and the post's resulting like count.
type ToggleLikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

func NewPostService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	rewriter *media.Rewriter,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		rewriter: rewriter,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxCaptionLen = 2200

	if in.AuthorID == "" {
		return nil, models.NewValidationError("author_id is required")
	}
	if strings.TrimSpace(in.ContentURL) == "" {
		return nil, models.NewValidationError("content_url is required")
	}
	if _, err := url.ParseRequestURI(in.ContentURL); err != nil {
		return nil, models.NewValidationError("content_url must be a valid URL")
	}
	if len(in.Caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2200 characters)")
	}

	post := &models.Post{
		ID:         id.New(),
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		ContentURL: in.ContentURL,
		Caption:    in.Caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidateFeed(ctx)
	s.presentPost(post)
	return post, nil
}

// GetPost returns a single post with the viewer's like flag resolved when a
// viewer is present. Anonymous reads are served cache-aside; viewer reads go
// to storage because the like annotation differs per viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID string) (*models.Post, error) {
	if viewerID == "" {
		post := &models.Post{}
		err := cache.Aside(ctx, cache.PostKey(postID), post, cache.PostTTL, func() error {
			fetched, err := s.postRepo.GetByID(ctx, postID)
			if err != nil {
				return err
			}
			*post = *fetched
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.presentPost(post)
		return post, nil
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	likedIDs, err := s.likeRepo.PostIDsLikedBy(ctx, viewerID, []string{postID})
	if err != nil {
		return nil, err
	}
	post.Liked = len(likedIDs) > 0
	s.presentPost(post)
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.AuthorID {
		return nil, models.NewValidationError("Only the author can edit a post")
	}

	post.Caption = in.Caption
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, post.ID)
	s.presentPost(post)
	return post, nil
}

// ToggleLike flips userID's like on postID. When no like exists one is
// inserted under its deterministic id; a duplicate-key conflict means a
// concurrent toggle won the insert, so the counter is left alone. When a
// like exists it is removed and the counter decremented, floored at zero.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID, userName string) (*ToggleLikeResult, error) {
	if userID == "" {
		return nil, models.NewValidationError("user_id is required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.GetByPostAndUser(ctx, postID, userID)
	switch {
	case err == nil:
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			if models.IsCode(err, models.CodeNotFound) {
				// Lost the race to a concurrent unlike; the winner's decrement
				// already covers this toggle.
				return s.toggleResult(ctx, postID, false)
			}
			return nil, err
		}
		if err := s.postRepo.AddLikeCount(ctx, postID, -1); err != nil {
			return nil, err
		}
		return s.toggleResult(ctx, postID, false)

	case models.IsCode(err, models.CodeNotFound):
		like := &models.Like{
			ID:       id.ForLike(postID, userID),
			PostID:   postID,
			UserID:   userID,
			UserName: userName,
		}
		if createErr := s.likeRepo.Create(ctx, like); createErr != nil {
			if models.IsCode(createErr, models.CodeConflict) {
				// Lost the race to a concurrent like; the winner's increment
				// already covers this toggle.
				return s.toggleResult(ctx, postID, true)
			}
			return nil, createErr
		}
		if err := s.postRepo.AddLikeCount(ctx, postID, 1); err != nil {
			return nil, err
		}
		return s.toggleResult(ctx, postID, true)

	default:
		return nil, err
	}
}

func (s *PostService) toggleResult(ctx context.Context, postID string, liked bool) (*ToggleLikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)
	return &ToggleLikeResult{Liked: liked, LikeCount: post.LikeCount}, nil
}

// ListLikes returns the likes on a post, newest first.
func (s *PostService) ListLikes(ctx context.Context, postID string) ([]*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByPost(ctx, postID)
}

// presentPost rewrites the stored content reference into its delivery URL.
func (s *PostService) presentPost(post *models.Post) {
	if s.rewriter != nil {
		post.ContentURL = s.rewriter.Rewrite(post.ContentURL)
	}
}
