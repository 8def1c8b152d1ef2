package repository

import (
	"context"
	"testing"

	"notebooks/internal/id"
	"notebooks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLike(postID, userID string) *models.Like {
	return &models.Like{
		ID:     id.ForLike(postID, userID),
		PostID: postID,
		UserID: userID,
	}
}

func TestLikeRepository_Create_DuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newLike("p1", "u1")))

	// same (post, user) pair derives the same id and collides
	err := repo.Create(ctx, newLike("p1", "u1"))
	assertCode(t, err, models.CodeConflict)

	// a different user on the same post is fine
	require.NoError(t, repo.Create(ctx, newLike("p1", "u2")))
}

func TestLikeRepository_GetByPostAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newLike("p1", "u1")))

	like, err := repo.GetByPostAndUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, id.ForLike("p1", "u1"), like.ID)

	_, err = repo.GetByPostAndUser(ctx, "p1", "u2")
	assertCode(t, err, models.CodeNotFound)
}

func TestLikeRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	like := newLike("p1", "u1")
	require.NoError(t, repo.Create(ctx, like))
	require.NoError(t, repo.Delete(ctx, like.ID))

	_, err := repo.GetByPostAndUser(ctx, "p1", "u1")
	assertCode(t, err, models.CodeNotFound)

	err = repo.Delete(ctx, like.ID)
	assertCode(t, err, models.CodeNotFound)
}

func TestLikeRepository_PostIDsLikedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newLike("p1", "u1")))
	require.NoError(t, repo.Create(ctx, newLike("p2", "u1")))
	require.NoError(t, repo.Create(ctx, newLike("p3", "u2")))

	ids, err := repo.PostIDsLikedBy(ctx, "u1", []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)

	// only the requested window is considered
	ids, err = repo.PostIDsLikedBy(ctx, "u1", []string{"p2"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p2"}, ids)

	ids, err = repo.PostIDsLikedBy(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLikeRepository_ListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newLike("p1", "u1")))
	require.NoError(t, repo.Create(ctx, newLike("p1", "u2")))
	require.NoError(t, repo.Create(ctx, newLike("p2", "u1")))

	likes, err := repo.ListByPost(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
