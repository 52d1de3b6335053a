package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/apierr"
	"github.com/skillforge/skillforge-backend/internal/types"
)

// fakePostRepo extends the store fake with the listing queries so it
// satisfies repos.PostRepo.
type fakePostRepo struct {
	*fakePostStore
}

func newFakePostRepo(posts ...*types.Post) *fakePostRepo {
	return &fakePostRepo{fakePostStore: newFakePostStore(posts...)}
}

func (r *fakePostRepo) Delete(_ context.Context, _ *gorm.DB, post *types.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, post.ID)
	return nil
}

func (r *fakePostRepo) ListAll(_ context.Context, _ *gorm.DB) ([]*types.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := make([]*types.Post, 0, len(r.posts))
	for _, p := range r.posts {
		results = append(results, copyPost(p))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].CreatedAt.After(results[j].CreatedAt) })
	return results, nil
}

func (r *fakePostRepo) ListByUserID(_ context.Context, _ *gorm.DB, userID string) ([]*types.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := make([]*types.Post, 0)
	for _, p := range r.posts {
		if p.UserID == userID {
			results = append(results, copyPost(p))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].CreatedAt.After(results[j].CreatedAt) })
	return results, nil
}

func newTestPostService(t *testing.T, posts ...*types.Post) (PostService, *fakePostRepo, *fakeNotifier) {
	t.Helper()
	repo := newFakePostRepo(posts...)
	notifier := &fakeNotifier{}
	return NewPostService(nil, testLogger(t), repo, notifier), repo, notifier
}

func TestCreatePostRequiresOwner(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.Create(context.Background(), "", &types.Post{Description: "no owner"})
	if err == nil {
		t.Fatalf("expected validation error for empty owner")
	}
	if !apierr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreatePostDefaultsAndInitialState(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	created, err := svc.Create(context.Background(), "u1", &types.Post{Description: "hello"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("ID not assigned")
	}
	if created.UserName != types.UnknownUserName {
		t.Fatalf("expected sentinel display name, got %q", created.UserName)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps not initialized: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}
	if len(created.Comments) != 0 || len(created.Likes) != 0 {
		t.Fatalf("expected empty comment and like sets")
	}
}

func TestCreatePostKeepsGivenUserName(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	created, err := svc.Create(context.Background(), "u1", &types.Post{UserName: "Ada", Description: "hello"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UserName != "Ada" {
		t.Fatalf("display name overwritten: %q", created.UserName)
	}
}

func TestGetPostByIDNotFound(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !apierr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListPostsByEmptyUserID(t *testing.T) {
	svc, _, _ := newTestPostService(t, &types.Post{ID: uuid.New(), UserID: "u1"})

	posts, err := svc.ListByUserID(context.Background(), "")
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("empty owner ID must yield empty result, got %d", len(posts))
	}
}

func TestUpdatePostPreservesImmutableFields(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	post := &types.Post{
		ID:          uuid.New(),
		UserID:      "u1",
		UserName:    "Ada",
		Description: "before",
		CreatedAt:   created,
		UpdatedAt:   created,
		Comments:    []types.Comment{{ID: "c1", UserID: "u2", Content: "keep me"}},
		Likes:       []types.Like{{UserID: "u2"}},
	}
	svc, _, _ := newTestPostService(t, post)

	updated, err := svc.Update(context.Background(), post.ID, &types.Post{
		UserID:      "attacker",
		Description: "after",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "after" {
		t.Fatalf("description not updated")
	}
	if updated.UserID != "u1" || updated.UserName != "Ada" {
		t.Fatalf("owner fields mutated: %q %q", updated.UserID, updated.UserName)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt mutated")
	}
	if !updated.UpdatedAt.After(created) {
		t.Fatalf("UpdatedAt not bumped")
	}
	if len(updated.Comments) != 1 || len(updated.Likes) != 1 {
		t.Fatalf("comments/likes lost on update")
	}
}

func TestDeletePost(t *testing.T) {
	post := &types.Post{ID: uuid.New(), UserID: "u1"}
	svc, repo, _ := newTestPostService(t, post)

	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), nil, post.ID); err == nil {
		t.Fatalf("post still present after delete")
	}

	if err := svc.Delete(context.Background(), post.ID); !apierr.IsNotFound(err) {
		t.Fatalf("expected not-found on double delete, got %v", err)
	}
}

// Full scenario: U2 interacts with U1's post; owner actions stay silent.
func TestPostInteractionScenario(t *testing.T) {
	svc, _, notifier := newTestPostService(t)

	created, err := svc.Create(context.Background(), "u1", &types.Post{Description: "learning Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	afterComment, err := svc.AddComment(context.Background(), created.ID, types.Comment{UserID: "u2", Content: "hi"})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(afterComment.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(afterComment.Comments))
	}
	if notifier.callCount() != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.callCount())
	}
	if call := notifier.calls[0]; call.ownerID != "u1" || call.actorID != "u2" {
		t.Fatalf("notification misrouted: %+v", call)
	}

	if _, err := svc.AddComment(context.Background(), created.ID, types.Comment{UserID: "u1", Content: "hi"}); err != nil {
		t.Fatalf("owner AddComment: %v", err)
	}
	if notifier.callCount() != 1 {
		t.Fatalf("owner comment must not notify, got %d", notifier.callCount())
	}

	liked, err := svc.AddLike(context.Background(), created.ID, types.Like{UserID: "u2"})
	if err != nil {
		t.Fatalf("AddLike: %v", err)
	}
	likedAgain, err := svc.AddLike(context.Background(), created.ID, types.Like{UserID: "u2"})
	if err != nil {
		t.Fatalf("second AddLike: %v", err)
	}
	if len(liked.Likes) != 1 || len(likedAgain.Likes) != 1 {
		t.Fatalf("like not idempotent: %d then %d", len(liked.Likes), len(likedAgain.Likes))
	}
}
