package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testPostRepo(t *testing.T) PostRepo {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewPostRepo(testDB(t), log)
}

func TestPostRepoSaveAssignsID(t *testing.T) {
	repo := testPostRepo(t)
	ctx := context.Background()

	post := &types.Post{UserID: "u1", Description: "hello", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	saved, err := repo.Save(ctx, nil, post)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatalf("ID not assigned on first save")
	}

	saved.Description = "edited"
	again, err := repo.Save(ctx, nil, saved)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if again.ID != saved.ID {
		t.Fatalf("ID changed on resave: %s vs %s", again.ID, saved.ID)
	}

	loaded, err := repo.GetByID(ctx, nil, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded.Description != "edited" {
		t.Fatalf("resave did not overwrite row: %q", loaded.Description)
	}
}

func TestPostRepoGetByIDMiss(t *testing.T) {
	repo := testPostRepo(t)

	_, err := repo.GetByID(context.Background(), nil, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestPostRepoListOrdering(t *testing.T) {
	repo := testPostRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, owner := range []string{"u1", "u2", "u1"} {
		post := &types.Post{
			UserID:      owner,
			Description: owner,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Save(ctx, nil, post); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	all, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatalf("ListAll not newest-first at index %d", i)
		}
	}

	mine, err := repo.ListByUserID(ctx, nil, "u1")
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 posts for u1, got %d", len(mine))
	}
	if mine[0].CreatedAt.Before(mine[1].CreatedAt) {
		t.Fatalf("ListByUserID not newest-first")
	}
}

func TestPostRepoDelete(t *testing.T) {
	repo := testPostRepo(t)
	ctx := context.Background()

	post := &types.Post{UserID: "u1", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if _, err := repo.Save(ctx, nil, post); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, nil, post); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, nil, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("post still present after delete: %v", err)
	}
}

func TestPostRepoEmbeddedCollectionsRoundTrip(t *testing.T) {
	repo := testPostRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	post := &types.Post{
		UserID:    "u1",
		MediaURLs: []string{"https://example.com/a.png"},
		CreatedAt: now,
		UpdatedAt: now,
		Comments: []types.Comment{
			{ID: uuid.NewString(), UserID: "u2", UserName: "Ada", Content: "nice", CreatedAt: now, UpdatedAt: now},
		},
		Likes: []types.Like{{UserID: "u3", CreatedAt: now}},
	}
	if _, err := repo.Save(ctx, nil, post); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.GetByID(ctx, nil, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(loaded.Comments) != 1 || loaded.Comments[0].Content != "nice" || loaded.Comments[0].UserName != "Ada" {
		t.Fatalf("comments did not survive round trip: %+v", loaded.Comments)
	}
	if len(loaded.Likes) != 1 || loaded.Likes[0].UserID != "u3" {
		t.Fatalf("likes did not survive round trip: %+v", loaded.Likes)
	}
	if len(loaded.MediaURLs) != 1 {
		t.Fatalf("media urls did not survive round trip: %+v", loaded.MediaURLs)
	}
}
