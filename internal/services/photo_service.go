package services

import (
	"context"

	"github.com/anonto42/nano-dating/backend/internal/models"
)

// PhotoService manages a user's photo collection
type PhotoService struct {
	store *Store
	now   Clock
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(store *Store, now Clock) *PhotoService {
	return &PhotoService{store: store, now: now}
}

func (s *PhotoService) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	return s.store.Photos.GetPhoto(ctx, id)
}

func (s *PhotoService) GetMainPhoto(ctx context.Context, userID uint) (*models.Photo, error) {
	return s.store.Photos.GetMainPhotoForUser(ctx, userID)
}

// AddPhoto registers an uploaded photo. A user's first photo becomes the main one.
func (s *PhotoService) AddPhoto(ctx context.Context, userID uint, req models.CreatePhotoRequest) (*models.Photo, error) {
	exists, err := s.store.Users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	count, err := s.store.Photos.CountPhotosForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		UserID:      userID,
		URL:         req.URL,
		Description: req.Description,
		PublicID:    req.PublicID,
		DateAdded:   s.now(),
		IsMain:      count == 0,
	}

	uow := s.store.unitOfWork()
	uow.Add(photo)
	if err := save(ctx, uow); err != nil {
		return nil, err
	}
	return photo, nil
}

// SetMainPhoto makes photoID the only main photo of userID.
func (s *PhotoService) SetMainPhoto(ctx context.Context, userID, photoID uint) error {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}
	if photo.IsMain {
		return ErrAlreadyMain
	}

	uow := s.store.unitOfWork()
	uow.Stage(s.store.Photos.SetMainPhoto(userID, photoID))
	return save(ctx, uow)
}

// DeletePhoto removes a photo that is not the user's main photo.
func (s *PhotoService) DeletePhoto(ctx context.Context, userID, photoID uint) error {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}
	if photo.IsMain {
		return ErrCannotDeleteMain
	}

	uow := s.store.unitOfWork()
	uow.Delete(photo)
	return save(ctx, uow)
}

func (s *PhotoService) ownedPhoto(ctx context.Context, userID, photoID uint) (*models.Photo, error) {
	photo, err := s.store.Photos.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil || photo.UserID != userID {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}
