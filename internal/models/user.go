package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a dating profile. Photos are owned by the user and removed with it.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64"`
	Gender       string    `json:"gender" gorm:"size:16;index"`
	DateOfBirth  time.Time `json:"date_of_birth" gorm:"index"`
	KnownAs      string    `json:"known_as"`
	Created      time.Time `json:"created" gorm:"autoCreateTime;index"`
	LastActive   time.Time `json:"last_active" gorm:"index"`
	Introduction string    `json:"introduction"`
	LookingFor   string    `json:"looking_for"`
	Interests    string    `json:"interests"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Photos       []Photo   `json:"photos,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserForList is the projection used by the member list.
type UserForList struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Gender     string    `json:"gender"`
	Age        int       `json:"age"`
	KnownAs    string    `json:"known_as"`
	Created    time.Time `json:"created"`
	LastActive time.Time `json:"last_active"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	PhotoURL   string    `json:"photo_url,omitempty"`
}

// UserForDetailed is the projection used by the member detail page.
type UserForDetailed struct {
	UserForList
	Introduction string             `json:"introduction"`
	LookingFor   string             `json:"looking_for"`
	Interests    string             `json:"interests"`
	Photos       []PhotoForDetailed `json:"photos"`
}

// UpdateUserRequest defines the request body for updating the caller's profile
type UpdateUserRequest struct {
	Introduction string `json:"introduction" validate:"max=2000"`
	LookingFor   string `json:"looking_for" validate:"max=2000"`
	Interests    string `json:"interests" validate:"max=2000"`
	City         string `json:"city" validate:"max=100"`
	Country      string `json:"country" validate:"max=100"`
}

// User list ordering keys.
const (
	OrderByCreated    = "created"
	OrderByLastActive = "lastActive"
)

// Age bounds applied when the caller leaves them unset.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 99
)

// UserParams filters, sorts and pages the member list.
type UserParams struct {
	PageParams
	UserID  uint
	Gender  string `query:"gender" validate:"omitempty,max=16"`
	MinAge  int    `query:"minAge" validate:"omitempty,min=18,max=99"`
	MaxAge  int    `query:"maxAge" validate:"omitempty,min=18,max=99,gtefield=MinAge"`
	Likers  bool   `query:"likers"`
	Likees  bool   `query:"likees"`
	OrderBy string `query:"orderBy" validate:"omitempty,oneof=created lastActive"`
}

// AgeRange returns the requested bounds with defaults filled in.
func (p UserParams) AgeRange() (minAge, maxAge int) {
	minAge, maxAge = p.MinAge, p.MaxAge
	if minAge <= 0 {
		minAge = DefaultMinAge
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return minAge, maxAge
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
