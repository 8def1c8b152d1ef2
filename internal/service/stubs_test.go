package service

import (
	"context"
	"errors"
	"testing"

	"notebooks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn               func(context.Context, *models.Post) error
	getByIDFn              func(context.Context, string) (*models.Post, error)
	listRecentFn           func(context.Context, int, int) ([]*models.Post, error)
	updateFn               func(context.Context, *models.Post) error
	deleteFn               func(context.Context, string) error
	addLikeCountFn         func(context.Context, string, int) error
	addCommentCountFn      func(context.Context, string, int) error
	incrementReportCountFn func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListRecent(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listRecentFn(ctx, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) AddLikeCount(ctx context.Context, id string, delta int) error {
	return s.addLikeCountFn(ctx, id, delta)
}
func (s *postRepoStub) AddCommentCount(ctx context.Context, id string, delta int) error {
	return s.addCommentCountFn(ctx, id, delta)
}
func (s *postRepoStub) IncrementReportCount(ctx context.Context, id string) error {
	return s.incrementReportCountFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:               func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:              func(_ context.Context, id string) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listRecentFn:           func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:               func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:               func(_ context.Context, _ string) error { return nil },
		addLikeCountFn:         func(_ context.Context, _ string, _ int) error { return nil },
		addCommentCountFn:      func(_ context.Context, _ string, _ int) error { return nil },
		incrementReportCountFn: func(_ context.Context, _ string) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn           func(context.Context, *models.Like) error
	getByPostAndUserFn func(context.Context, string, string) (*models.Like, error)
	deleteFn           func(context.Context, string) error
	listByPostFn       func(context.Context, string) ([]*models.Like, error)
	postIDsLikedByFn   func(context.Context, string, []string) ([]string, error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error) {
	return s.getByPostAndUserFn(ctx, postID, userID)
}
func (s *likeRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID string) ([]*models.Like, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *likeRepoStub) PostIDsLikedBy(ctx context.Context, userID string, postIDs []string) ([]string, error) {
	return s.postIDsLikedByFn(ctx, userID, postIDs)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn: func(_ context.Context, _ *models.Like) error { return nil },
		getByPostAndUserFn: func(_ context.Context, postID, _ string) (*models.Like, error) {
			return nil, models.NewNotFoundError("Like", postID)
		},
		deleteFn:         func(_ context.Context, _ string) error { return nil },
		listByPostFn:     func(_ context.Context, _ string) ([]*models.Like, error) { return nil, nil },
		postIDsLikedByFn: func(_ context.Context, _ string, _ []string) ([]string, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, string) (*models.Comment, error)
	listByPostFn func(context.Context, string) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, string) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ string) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
	}
}

// reportRepoStub is a stub for repository.ReportRepository.
type reportRepoStub struct {
	createFn               func(context.Context, *models.ReportedPost) error
	getByPostAndReporterFn func(context.Context, string, string) (*models.ReportedPost, error)
	postIDsReportedByFn    func(context.Context, string, []string) ([]string, error)
	deleteByPostFn         func(context.Context, string) error
}

func (s *reportRepoStub) Create(ctx context.Context, report *models.ReportedPost) error {
	return s.createFn(ctx, report)
}
func (s *reportRepoStub) GetByPostAndReporter(ctx context.Context, postID, reporterID string) (*models.ReportedPost, error) {
	return s.getByPostAndReporterFn(ctx, postID, reporterID)
}
func (s *reportRepoStub) PostIDsReportedBy(ctx context.Context, reporterID string, postIDs []string) ([]string, error) {
	return s.postIDsReportedByFn(ctx, reporterID, postIDs)
}
func (s *reportRepoStub) DeleteByPost(ctx context.Context, postID string) error {
	return s.deleteByPostFn(ctx, postID)
}

func noopReportRepo() *reportRepoStub {
	return &reportRepoStub{
		createFn: func(_ context.Context, _ *models.ReportedPost) error { return nil },
		getByPostAndReporterFn: func(_ context.Context, postID, _ string) (*models.ReportedPost, error) {
			return nil, models.NewNotFoundError("Report", postID)
		},
		postIDsReportedByFn: func(_ context.Context, _ string, _ []string) ([]string, error) { return nil, nil },
		deleteByPostFn:      func(_ context.Context, _ string) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, string) (*models.User, error)
	upsertFn        func(context.Context, *models.User) error
	verifiedByIDsFn func(context.Context, []string) (map[string]bool, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Upsert(ctx context.Context, user *models.User) error {
	return s.upsertFn(ctx, user)
}
func (s *userRepoStub) VerifiedByIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	return s.verifiedByIDsFn(ctx, ids)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		upsertFn: func(_ context.Context, _ *models.User) error { return nil },
		verifiedByIDsFn: func(_ context.Context, _ []string) (map[string]bool, error) {
			return map[string]bool{}, nil
		},
	}
}

// mediaStoreStub is a stub for media.Store.
type mediaStoreStub struct {
	deleteObjectFn func(context.Context, string) error
}

func (s *mediaStoreStub) DeleteObject(ctx context.Context, url string) error {
	return s.deleteObjectFn(ctx, url)
}

func noopMediaStore() *mediaStoreStub {
	return &mediaStoreStub{
		deleteObjectFn: func(_ context.Context, _ string) error { return nil },
	}
}

// assertCode asserts that err is an AppError carrying the given code.
func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
