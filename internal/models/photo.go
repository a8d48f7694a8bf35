package models

import "time"

// Photo belongs to exactly one user. At most one photo per user has IsMain set.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	URL         string    `json:"url" gorm:"not null"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"date_added" gorm:"autoCreateTime"`
	IsMain      bool      `json:"is_main" gorm:"default:false;index"`
	PublicID    string    `json:"public_id,omitempty"`
}

// PhotoForDetailed is the photo shape embedded in a detailed user.
type PhotoForDetailed struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"date_added"`
	IsMain      bool      `json:"is_main"`
}

// CreatePhotoRequest defines the request body for registering an uploaded photo
type CreatePhotoRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"max=500"`
	PublicID    string `json:"public_id" validate:"max=200"`
}
