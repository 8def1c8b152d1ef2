package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"notebooks/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{
		ID:         "p1",
		AuthorID:   "u1",
		AuthorName: "ada",
		ContentURL: "https://origin.example.net/media/a.jpg",
		Caption:    "first",
	}
	require.NoError(t, repo.Create(ctx, post))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.AuthorID)
	assert.Equal(t, 0, got.LikeCount)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assertCode(t, err, models.CodeNotFound)
}

func TestPostRepository_Create_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{ID: "p1", AuthorID: "u1", AuthorName: "ada", ContentURL: "https://o/a"}
	require.NoError(t, repo.Create(ctx, post))

	dup := &models.Post{ID: "p1", AuthorID: "u2", AuthorName: "bob", ContentURL: "https://o/b"}
	err := repo.Create(ctx, dup)
	assertCode(t, err, models.CodeConflict)
}

func TestPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{ID: "p1", AuthorID: "u1", AuthorName: "a", ContentURL: "https://o/a"}))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.GetByID(ctx, "p1")
	assertCode(t, err, models.CodeNotFound)

	// deleting again reports the record gone
	err = repo.Delete(ctx, "p1")
	assertCode(t, err, models.CodeNotFound)
}

func TestPostRepository_ListRecent_Order(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		post := &models.Post{
			ID:         id,
			AuthorID:   "u1",
			AuthorName: "a",
			ContentURL: "https://o/" + id,
			CreatedAt:  now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, post))
	}

	posts, err := repo.ListRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].ID)
	assert.Equal(t, "mid", posts[1].ID)

	rest, err := repo.ListRecent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "old", rest[0].ID)
}

func TestPostRepository_Counters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{ID: "p1", AuthorID: "u1", AuthorName: "a", ContentURL: "https://o/a"}))

	require.NoError(t, repo.AddLikeCount(ctx, "p1", 1))
	require.NoError(t, repo.AddLikeCount(ctx, "p1", 1))
	require.NoError(t, repo.AddCommentCount(ctx, "p1", 1))
	require.NoError(t, repo.IncrementReportCount(ctx, "p1"))

	post, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, post.LikeCount)
	assert.Equal(t, 1, post.CommentCount)
	assert.Equal(t, 1, post.ReportCount)
}

func TestPostRepository_Counters_FloorAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{ID: "p1", AuthorID: "u1", AuthorName: "a", ContentURL: "https://o/a"}))

	require.NoError(t, repo.AddLikeCount(ctx, "p1", -1))
	require.NoError(t, repo.AddLikeCount(ctx, "p1", 1))
	require.NoError(t, repo.AddLikeCount(ctx, "p1", -1))
	require.NoError(t, repo.AddLikeCount(ctx, "p1", -1))

	post, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, post.LikeCount, "counter must never go negative")
}

func TestPostRepository_Counters_MissingPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.AddLikeCount(context.Background(), "missing", 1)
	assertCode(t, err, models.CodeNotFound)
}

func TestPostRepository_AddLikeCount_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "like_count"=CASE WHEN like_count + $1 < 0 THEN 0 ELSE like_count + $2 END WHERE id = $3`)).
		WithArgs(-1, -1, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddLikeCount(context.Background(), "p1", -1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
