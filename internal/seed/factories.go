// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"notebooks/internal/id"
	"notebooks/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedOptions tunes how demo data is generated.
type SeedOptions struct {
	// MaxDays spreads post creation times over the last MaxDays days.
	MaxDays int
	// StorageOrigin is the prefix seeded content URLs are built under, so
	// they match whatever the feed rewrites from.
	StorageOrigin string
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 30
	}
	if opts.StorageOrigin == "" {
		opts.StorageOrigin = "https://notebooksstorage.blob.example.net/"
	}
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample directory `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	// Directory ids mimic the identity provider's format, not the short
	// content id format.
	user := &models.User{
		ID:       uuid.NewString(),
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Verified: f.rng.Intn(5) == 0,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` authored by the
// given user, with a creation time spread over the recent past.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		ID:         id.New(),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		ContentURL: fmt.Sprintf("%smedia/%s.jpg", f.opts.StorageOrigin, gofakeit.UUID()),
		Caption:    gofakeit.Sentence(8),
	}

	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a sample comment on the provided post and bumps the
// post's comment counter, keeping seeded data consistent with live writes.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		ID:         id.New(),
		PostID:     post.ID,
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Content:    gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(post).UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
		return nil, err
	}
	post.CommentCount++
	return comment, nil
}

// CreateLike persists a like from `user` on `post` under its deterministic
// id and bumps the post's like counter.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		ID:       id.ForLike(post.ID, user.ID),
		PostID:   post.ID,
		UserID:   user.ID,
		UserName: user.Username,
	}
	if err := f.db.Create(like).Error; err != nil {
		return err
	}
	if err := f.db.Model(post).UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
		return err
	}
	post.LikeCount++
	return nil
}

// CreateReport persists a report from `reporter` against `post` and bumps the
// post's report counter. It never triggers the removal cascade; seeded report
// counts stay below the removal threshold on the caller's side.
func (f *Factory) CreateReport(reporter *models.User, post *models.Post, reason string) (*models.ReportedPost, error) {
	if reason == "" {
		reason = gofakeit.RandomString([]string{"spam", "abuse", "off-topic", "copyright"})
	}
	report := &models.ReportedPost{
		ID:         id.New(),
		PostID:     post.ID,
		ReporterID: reporter.ID,
		Reason:     reason,
	}
	if err := f.db.Create(report).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(post).UpdateColumn("report_count", gorm.Expr("report_count + 1")).Error; err != nil {
		return nil, err
	}
	post.ReportCount++
	return report, nil
}
