package services

import (
	"context"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/pagination"
	"github.com/anonto42/nano-dating/backend/internal/projection"
)

// UserService serves member profiles and the filtered member list
type UserService struct {
	store *Store
	now   Clock
}

// NewUserService creates a new UserService
func NewUserService(store *Store, now Clock) *UserService {
	return &UserService{store: store, now: now}
}

// GetUser returns the detailed profile of id, or nil if there is no such user.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.UserForDetailed, error) {
	user, err := s.store.Users.GetUserByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	view := projection.UserForDetailed(*user, s.now())
	return &view, nil
}

// GetUsers returns a page of the member list seen by params.UserID. When no
// gender is requested the caller's opposite gender is used, if known.
func (s *UserService) GetUsers(ctx context.Context, params models.UserParams) (*pagination.PagedResult[models.UserForList], error) {
	if err := pagination.Validate(params.PageNumber, params.PageSize); err != nil {
		return nil, err
	}
	if params.Gender == "" {
		current, err := s.store.Users.GetUserByID(ctx, params.UserID)
		if err != nil {
			return nil, err
		}
		if current != nil {
			params.Gender = oppositeGender(current.Gender)
		}
	}

	now := s.now()
	users, err := s.store.Users.GetUsers(ctx, params, Today(now))
	if err != nil {
		return nil, err
	}
	return pagination.Map(users, func(u models.User) models.UserForList {
		return projection.UserForList(u, now)
	}), nil
}

// UpdateUser applies the profile fields of req to user id.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req models.UpdateUserRequest) error {
	exists, err := s.store.Users.UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	uow := s.store.unitOfWork()
	uow.Stage(s.store.Users.UpdateProfile(id, req))
	if _, err := uow.SaveAll(ctx); err != nil {
		return err
	}
	return nil
}

// TouchLastActive records that id just made a request.
func (s *UserService) TouchLastActive(ctx context.Context, id uint) error {
	return s.store.Users.TouchLastActive(ctx, id, s.now())
}

func oppositeGender(gender string) string {
	switch gender {
	case "male":
		return "female"
	case "female":
		return "male"
	default:
		return ""
	}
}
