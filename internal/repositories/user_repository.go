package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/pagination"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UserExists(ctx context.Context, id uint) (bool, error)
	GetUsers(ctx context.Context, params models.UserParams, today time.Time) (*pagination.PagedResult[models.User], error)
	TouchLastActive(ctx context.Context, id uint, at time.Time) error
	UpdateProfile(id uint, req models.UpdateUserRequest) Op
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db    *gorm.DB
	likes LikeRepository
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB, likes LikeRepository) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, likes: likes}
}

// GetUserByID retrieves a user with photos. A missing user yields (nil, nil).
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := findOne[models.User](r.db.WithContext(ctx).Preload("Photos").Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// UserExists reports whether id names a user without loading the profile.
func (r *PostgresUserRepository) UserExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return count > 0, nil
}

// GetUsers returns one page of the member list. All filters are ANDed; the
// age window is evaluated against today, which the caller supplies.
func (r *PostgresUserRepository) GetUsers(ctx context.Context, params models.UserParams, today time.Time) (*pagination.PagedResult[models.User], error) {
	if err := pagination.Validate(params.PageNumber, params.PageSize); err != nil {
		return nil, err
	}

	filters := []pagination.Scope{excludeUser(params.UserID)}
	if params.Gender != "" {
		filters = append(filters, withGender(params.Gender))
	}

	minAge, maxAge := params.AgeRange()
	filters = append(filters, bornBetween(today.AddDate(-maxAge-1, 0, 0), today.AddDate(-minAge, 0, 0)))

	if params.Likers || params.Likees {
		likes, err := r.likes.UserLikes(ctx, params.UserID)
		if err != nil {
			return nil, err
		}
		if params.Likers {
			filters = append(filters, idIn(likes.IDs(models.Likers)))
		}
		if params.Likees {
			filters = append(filters, idIn(likes.IDs(models.Likees)))
		}
	}

	order := "last_active DESC"
	if params.OrderBy == models.OrderByCreated {
		order = "created DESC"
	}

	page, err := pagination.Paginate[models.User](ctx, r.db, params.PageNumber, params.PageSize, pagination.Query{
		Filters:  filters,
		Order:    []string{order, "id DESC"},
		Preloads: []string{"Photos"},
	}, snapshotOptions(r.db)...)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return page, nil
}

// TouchLastActive stamps the user's last activity time.
func (r *PostgresUserRepository) TouchLastActive(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).UpdateColumn("last_active", at).Error
}

// UpdateProfile stages a write of the editable profile columns of id only.
func (r *PostgresUserRepository) UpdateProfile(id uint, req models.UpdateUserRequest) Op {
	return func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
			"introduction": req.Introduction,
			"looking_for":  req.LookingFor,
			"interests":    req.Interests,
			"city":         req.City,
			"country":      req.Country,
		})
		return res.RowsAffected, res.Error
	}
}

func excludeUser(id uint) pagination.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id <> ?", id)
	}
}

func withGender(gender string) pagination.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("gender = ?", gender)
	}
}

func bornBetween(earliest, latest time.Time) pagination.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date_of_birth >= ? AND date_of_birth <= ?", earliest, latest)
	}
}

// idIn restricts to ids; an empty set matches nothing.
func idIn(ids []uint) pagination.Scope {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("id IN ?", ids)
	}
}
