package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/anonto42/nano-dating/backend/internal/models"
)

// LikeService records likes between users
type LikeService struct {
	store *Store
}

// NewLikeService creates a new LikeService
func NewLikeService(store *Store) *LikeService {
	return &LikeService{store: store}
}

func (s *LikeService) GetLike(ctx context.Context, likerID, likeeID uint) (*models.Like, error) {
	return s.store.Likes.GetLike(ctx, likerID, likeeID)
}

// LikeUser adds the edge likerID -> likeeID.
func (s *LikeService) LikeUser(ctx context.Context, likerID, likeeID uint) error {
	if likerID == likeeID {
		return ErrSelfLike
	}

	existing, err := s.store.Likes.GetLike(ctx, likerID, likeeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyLiked
	}

	exists, err := s.store.Users.UserExists(ctx, likeeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	uow := s.store.unitOfWork()
	uow.Add(&models.Like{LikerID: likerID, LikeeID: likeeID})
	if err := save(ctx, uow); err != nil {
		// a concurrent like of the same pair won the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// UnlikeUser removes the edge likerID -> likeeID.
func (s *LikeService) UnlikeUser(ctx context.Context, likerID, likeeID uint) error {
	existing, err := s.store.Likes.GetLike(ctx, likerID, likeeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLikeNotFound
	}

	uow := s.store.unitOfWork()
	uow.Delete(existing)
	return save(ctx, uow)
}
