package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository reads the directed like graph
type LikeRepository interface {
	GetLike(ctx context.Context, likerID, likeeID uint) (*models.Like, error)
	UserLikes(ctx context.Context, userID uint) (*models.LikeSet, error)
	LikedUserIDs(ctx context.Context, userID uint, direction models.LikeDirection) ([]uint, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// GetLike retrieves the edge likerID -> likeeID, or nil if there is none
func (r *PostgresLikeRepository) GetLike(ctx context.Context, likerID, likeeID uint) (*models.Like, error) {
	like, err := findOne[models.Like](r.db.WithContext(ctx).Where("liker_id = ? AND likee_id = ?", likerID, likeeID))
	if err != nil {
		return nil, fmt.Errorf("get like %d->%d: %w", likerID, likeeID, err)
	}
	return like, nil
}

// UserLikes loads every edge touching userID, in both directions, with one query.
func (r *PostgresLikeRepository) UserLikes(ctx context.Context, userID uint) (*models.LikeSet, error) {
	var edges []models.Like
	if err := r.db.WithContext(ctx).
		Where("liker_id = ? OR likee_id = ?", userID, userID).
		Find(&edges).Error; err != nil {
		return nil, fmt.Errorf("load likes of user %d: %w", userID, err)
	}
	return models.NewLikeSet(userID, edges), nil
}

// LikedUserIDs returns who likes userID (Likers) or whom userID likes (Likees).
func (r *PostgresLikeRepository) LikedUserIDs(ctx context.Context, userID uint, direction models.LikeDirection) ([]uint, error) {
	set, err := r.UserLikes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return set.IDs(direction), nil
}
