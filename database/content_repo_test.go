package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jaipongz/site-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open in-memory test database")
	require.NoError(t, Migrate(db))
	return db
}

func TestContentRepo_AddAssignsIDAndCreatedAt(t *testing.T) {
	repo := NewContentRepo[models.Article](newTestDB(t))

	article := models.Article{Title: "First", Description: "desc"}
	require.NoError(t, repo.Add(&article))

	assert.NotZero(t, article.ID)
	assert.False(t, article.CreatedAt.IsZero())

	found, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "First", found.Title)
	assert.Equal(t, "desc", found.Description)
}

func TestContentRepo_FindAllNewestFirst(t *testing.T) {
	repo := NewContentRepo[models.Article](newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		article := models.Article{
			Title:       title,
			Description: "d",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Add(&article))
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "middle", all[1].Title)
	assert.Equal(t, "oldest", all[2].Title)
}

func TestContentRepo_FindByIDMissing(t *testing.T) {
	repo := NewContentRepo[models.Article](newTestDB(t))

	found, err := repo.FindByID(12345)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestContentRepo_UpdateIsFullReplace(t *testing.T) {
	repo := NewContentRepo[models.Portfolio](newTestDB(t))

	thumb := "/uploads/old.png"
	item := models.Portfolio{Thumbnail: &thumb, Title: "Site", Description: "d", Link: "https://a"}
	require.NoError(t, repo.Add(&item))

	updated := models.Portfolio{
		ID:          item.ID,
		Thumbnail:   nil,
		Title:       "Site v2",
		Description: "d2",
		Link:        "",
		CreatedAt:   item.CreatedAt,
	}
	require.NoError(t, repo.Update(&updated))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Site v2", found.Title)
	assert.Nil(t, found.Thumbnail, "omitted image must be written as submitted")
	assert.Equal(t, "", found.Link)
	assert.WithinDuration(t, item.CreatedAt, found.CreatedAt, time.Second, "created_at is never rewritten")
}

func TestContentRepo_Delete(t *testing.T) {
	repo := NewContentRepo[models.Service](newTestDB(t))

	service := models.Service{Icon: "code", Title: "Dev", Description: "d"}
	require.NoError(t, repo.Add(&service))

	require.NoError(t, repo.Delete(service.ID))

	found, err := repo.FindByID(service.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting an unknown id reports not-found instead of silently succeeding.
	err = repo.Delete(service.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminRepo_FindByUsername(t *testing.T) {
	repo := NewAdminRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.Admin{Username: "admin", Password: "hash", Email: "a@b.c"}))

	admin, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "a@b.c", admin.Email)

	missing, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
