// Package services implements the operations exposed to the API layer. It
// composes the repositories, projects entities into views, and stages every
// write through a per-call unit of work.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/anonto42/nano-dating/backend/internal/repositories"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrLikeNotFound     = errors.New("like not found")
	ErrSelfLike         = errors.New("you cannot like yourself")
	ErrAlreadyLiked     = errors.New("you already like this user")
	ErrAlreadyMain      = errors.New("this is already the main photo")
	ErrCannotDeleteMain = errors.New("you cannot delete your main photo")
	ErrNotParticipant   = errors.New("user is not a participant of this message")
	ErrNothingSaved     = errors.New("no changes were saved")
)

// Clock returns the current time. Services never read the wall clock directly.
type Clock func() time.Time

// Today truncates now to midnight in its own location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Store bundles the repositories the services read from and the database
// their units of work commit to.
type Store struct {
	DB       *gorm.DB
	Users    repositories.UserRepository
	Photos   repositories.PhotoRepository
	Likes    repositories.LikeRepository
	Messages repositories.MessageRepository
}

// NewStore wires the gorm-backed repositories over db.
func NewStore(db *gorm.DB) *Store {
	likes := repositories.NewPostgresLikeRepository(db)
	return &Store{
		DB:       db,
		Users:    repositories.NewPostgresUserRepository(db, likes),
		Photos:   repositories.NewPostgresPhotoRepository(db),
		Likes:    likes,
		Messages: repositories.NewPostgresMessageRepository(db),
	}
}

func (s *Store) unitOfWork() *repositories.UnitOfWork {
	return repositories.NewUnitOfWork(s.DB)
}

// save commits uow and treats a commit that changed nothing as a failure.
func save(ctx context.Context, uow *repositories.UnitOfWork) error {
	changed, err := uow.SaveAll(ctx)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingSaved
	}
	return nil
}
