package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"gorm.io/gorm"
)

// PhotoRepository defines the interface for photo data operations
type PhotoRepository interface {
	GetPhoto(ctx context.Context, id uint) (*models.Photo, error)
	GetMainPhotoForUser(ctx context.Context, userID uint) (*models.Photo, error)
	CountPhotosForUser(ctx context.Context, userID uint) (int64, error)
	SetMainPhoto(userID, photoID uint) Op
}

// PostgresPhotoRepository implements PhotoRepository for PostgreSQL
type PostgresPhotoRepository struct {
	db *gorm.DB
}

// NewPostgresPhotoRepository creates a new PostgresPhotoRepository
func NewPostgresPhotoRepository(db *gorm.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

func (r *PostgresPhotoRepository) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	photo, err := findOne[models.Photo](r.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get photo %d: %w", id, err)
	}
	return photo, nil
}

func (r *PostgresPhotoRepository) GetMainPhotoForUser(ctx context.Context, userID uint) (*models.Photo, error) {
	photo, err := findOne[models.Photo](r.db.WithContext(ctx).Where("user_id = ? AND is_main = ?", userID, true))
	if err != nil {
		return nil, fmt.Errorf("get main photo of user %d: %w", userID, err)
	}
	return photo, nil
}

func (r *PostgresPhotoRepository) CountPhotosForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Photo{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count photos of user %d: %w", userID, err)
	}
	return count, nil
}

// SetMainPhoto stages the switch of userID's main photo to photoID. A single
// UPDATE rewrites the flag on all of the user's photos, so no reader sees
// zero or two main photos mid-switch.
func (r *PostgresPhotoRepository) SetMainPhoto(userID, photoID uint) Op {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&models.Photo{}).
			Where("user_id = ?", userID).
			Update("is_main", gorm.Expr("id = ?", photoID))
		return res.RowsAffected, res.Error
	}
}
