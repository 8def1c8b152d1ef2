package service

import (
	"context"
	"strings"

	"notebooks/internal/cache"
	"notebooks/internal/id"
	"notebooks/internal/models"
	"notebooks/internal/repository"
)

// CommentService manages comments and the parent post's comment counter.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type AddCommentInput struct {
	PostID     string
	AuthorID   string
	AuthorName string
	Content    string
}

type UpdateCommentInput struct {
	CommentID string
	AuthorID  string
	Content   string
}

// AddCommentResult carries the new comment together with the post's
// resulting comment count.
type AddCommentResult struct {
	Comment      *models.Comment `json:"comment"`
	CommentCount int             `json:"comment_count"`
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment creates a comment on a post and bumps the post's comment count.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*AddCommentResult, error) {
	const maxContentLen = 2200

	if in.AuthorID == "" {
		return nil, models.NewValidationError("author_id is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Comment too long (max 2200 characters)")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:         id.New(),
		PostID:     in.PostID,
		AuthorID:   in.AuthorID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.postRepo.AddCommentCount(ctx, in.PostID, 1); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, in.PostID)
	return &AddCommentResult{Comment: comment, CommentCount: post.CommentCount}, nil
}

// UpdateComment replaces a comment's content in place. Counters are not
// touched: the comment still exists, it just says something else now.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != in.AuthorID {
		return nil, models.NewValidationError("Only the author can edit a comment")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The parent post's comment count is left
// as-is: the counter records comment activity, not the number of surviving
// comments.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, authorID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != authorID {
		return models.NewValidationError("Only the author can delete a comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListComments returns a post's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
