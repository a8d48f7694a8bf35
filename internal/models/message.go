package models

import "time"

// Message is a direct message. Deletion is tracked per participant.
type Message struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	SenderID         uint       `json:"sender_id" gorm:"index;not null"`
	Sender           User       `json:"-" gorm:"foreignKey:SenderID"`
	RecipientID      uint       `json:"recipient_id" gorm:"index;not null"`
	Recipient        User       `json:"-" gorm:"foreignKey:RecipientID"`
	Content          string     `json:"content" gorm:"type:text"`
	IsRead           bool       `json:"is_read" gorm:"default:false"`
	DateRead         *time.Time `json:"date_read"`
	MessageSent      time.Time  `json:"message_sent" gorm:"index"`
	SenderDeleted    bool       `json:"sender_deleted" gorm:"default:false"`
	RecipientDeleted bool       `json:"recipient_deleted" gorm:"default:false"`
}

// MessageToReturn is the projection returned to API clients.
type MessageToReturn struct {
	ID                uint       `json:"id"`
	SenderID          uint       `json:"sender_id"`
	SenderKnownAs     string     `json:"sender_known_as"`
	SenderPhotoURL    string     `json:"sender_photo_url,omitempty"`
	RecipientID       uint       `json:"recipient_id"`
	RecipientKnownAs  string     `json:"recipient_known_as"`
	RecipientPhotoURL string     `json:"recipient_photo_url,omitempty"`
	Content           string     `json:"content"`
	IsRead            bool       `json:"is_read"`
	DateRead          *time.Time `json:"date_read,omitempty"`
	MessageSent       time.Time  `json:"message_sent"`
}

// CreateMessageRequest defines the request body for sending a message
type CreateMessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Content     string `json:"content" validate:"required,min=1,max=2000"`
}

// Message containers.
const (
	ContainerInbox  = "Inbox"
	ContainerOutbox = "Outbox"
	ContainerUnread = "Unread"
)

// MessageParams selects a container of the caller's messages.
type MessageParams struct {
	PageParams
	UserID           uint
	MessageContainer string `query:"messageContainer"`
}
