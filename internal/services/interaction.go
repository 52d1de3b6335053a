package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/skillforge-backend/internal/apierr"
	"github.com/skillforge/skillforge-backend/internal/logger"
	"github.com/skillforge/skillforge-backend/internal/types"
)

// SocialStore is the slice of an aggregate repo the interaction engine needs:
// load by ID and whole-aggregate save.
type SocialStore[T types.Social] interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (T, error)
	Save(ctx context.Context, tx *gorm.DB, aggregate T) (T, error)
}

// InteractionEngine applies comment and like mutations to any social
// aggregate. One engine instance serves one content type; the three content
// services each embed one instead of carrying their own copy of this logic.
//
// Every operation is a load-mutate-save cycle. Mutations on the same
// aggregate ID are serialized in-process through a keyed mutex, which closes
// the duplicate-like window between two racing AddLike calls on a single
// replica. Replicas do not coordinate.
type InteractionEngine[T types.Social] struct {
	log         *logger.Logger
	store       SocialStore[T]
	notifier    Notifier
	contentType string
	locks       keyedMutex
}

func NewInteractionEngine[T types.Social](
	baseLog *logger.Logger,
	store SocialStore[T],
	notifier Notifier,
	contentType string,
) *InteractionEngine[T] {
	engineLog := baseLog.With("engine", "InteractionEngine", "content_type", contentType)
	return &InteractionEngine[T]{
		log:         engineLog,
		store:       store,
		notifier:    notifier,
		contentType: contentType,
	}
}

func (e *InteractionEngine[T]) load(ctx context.Context, id uuid.UUID) (T, error) {
	aggregate, err := e.store.GetByID(ctx, nil, id)
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, apierr.NotFound(e.contentType+"_not_found", fmt.Errorf("%s %s not found", e.contentType, id))
		}
		return zero, fmt.Errorf("load %s: %w", e.contentType, err)
	}
	return aggregate, nil
}

// AddComment appends a comment to the aggregate and notifies the owner when
// someone else wrote it. The comment ID is always assigned here, never taken
// from the caller.
func (e *InteractionEngine[T]) AddComment(ctx context.Context, id uuid.UUID, comment types.Comment) (T, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	aggregate, err := e.load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	if comment.UserName == "" {
		comment.UserName = types.UnknownUserName
	}
	now := time.Now()
	comment.ID = uuid.NewString()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	aggregate.SetComments(append(aggregate.GetComments(), comment))

	saved, err := e.store.Save(ctx, nil, aggregate)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("save %s: %w", e.contentType, err)
	}

	if e.notifier != nil && comment.UserID != saved.GetUserID() {
		e.notifier.NotifyComment(ctx, e.contentType, id, saved.GetUserID(), comment.UserID, comment.Content)
	}
	return saved, nil
}

// UpdateComment replaces the body of the first comment matching commentID.
// A miss is not an error: the aggregate is persisted unchanged and returned.
func (e *InteractionEngine[T]) UpdateComment(ctx context.Context, id uuid.UUID, commentID, content string) (T, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	aggregate, err := e.load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	comments := aggregate.GetComments()
	for i := range comments {
		if comments[i].ID == commentID {
			comments[i].Content = content
			comments[i].UpdatedAt = time.Now()
			break
		}
	}
	aggregate.SetComments(comments)

	saved, err := e.store.Save(ctx, nil, aggregate)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("save %s: %w", e.contentType, err)
	}
	return saved, nil
}

// DeleteComment removes the comment matching commentID only when the
// requester wrote it or owns the aggregate. An unauthorized or missing
// target leaves the comment list untouched and still succeeds.
func (e *InteractionEngine[T]) DeleteComment(ctx context.Context, id uuid.UUID, commentID, requesterID string) (T, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	aggregate, err := e.load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	isOwner := aggregate.GetUserID() == requesterID
	kept := make([]types.Comment, 0, len(aggregate.GetComments()))
	for _, comment := range aggregate.GetComments() {
		if comment.ID == commentID && (comment.UserID == requesterID || isOwner) {
			continue
		}
		kept = append(kept, comment)
	}
	aggregate.SetComments(kept)

	saved, err := e.store.Save(ctx, nil, aggregate)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("save %s: %w", e.contentType, err)
	}
	return saved, nil
}

// AddLike records a like once per user. Liking an already-liked aggregate is
// a no-op: nothing is persisted and no notification goes out.
func (e *InteractionEngine[T]) AddLike(ctx context.Context, id uuid.UUID, like types.Like) (T, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	aggregate, err := e.load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	for _, existing := range aggregate.GetLikes() {
		if existing.UserID == like.UserID {
			return aggregate, nil
		}
	}

	like.CreatedAt = time.Now()
	aggregate.SetLikes(append(aggregate.GetLikes(), like))

	saved, err := e.store.Save(ctx, nil, aggregate)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("save %s: %w", e.contentType, err)
	}

	if e.notifier != nil && like.UserID != saved.GetUserID() {
		e.notifier.NotifyLike(ctx, e.contentType, id, saved.GetUserID(), like.UserID)
	}
	return saved, nil
}

// RemoveLike drops every like from userID. Removing a like that was never
// recorded is a no-op.
func (e *InteractionEngine[T]) RemoveLike(ctx context.Context, id uuid.UUID, userID string) (T, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	aggregate, err := e.load(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	kept := make([]types.Like, 0, len(aggregate.GetLikes()))
	for _, like := range aggregate.GetLikes() {
		if like.UserID == userID {
			continue
		}
		kept = append(kept, like)
	}
	aggregate.SetLikes(kept)

	saved, err := e.store.Save(ctx, nil, aggregate)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("save %s: %w", e.contentType, err)
	}
	return saved, nil
}

// keyedMutex hands out one mutex per aggregate ID. Entries are reference
// counted so the map does not grow with every aggregate ever touched.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	if k.entries == nil {
		k.entries = make(map[uuid.UUID]*lockEntry)
	}
	entry, ok := k.entries[id]
	if !ok {
		entry = &lockEntry{}
		k.entries[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, id)
		}
		k.mu.Unlock()
	}
}
