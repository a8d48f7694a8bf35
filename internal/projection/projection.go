// Package projection turns entities into the shapes returned to API clients.
// Every function is pure; the current time is passed in.
package projection

import (
	"time"

	"github.com/anonto42/nano-dating/backend/internal/models"
)

// Age is the number of whole years between dob and now, counted on the calendar:
// the year difference, less one if now falls before this year's birthday.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// MainPhotoURL returns the URL of the photo flagged main, or "" when there is none.
func MainPhotoURL(photos []models.Photo) string {
	for _, p := range photos {
		if p.IsMain {
			return p.URL
		}
	}
	return ""
}

// UserForList projects u for the member list.
func UserForList(u models.User, now time.Time) models.UserForList {
	return models.UserForList{
		ID:         u.ID,
		Username:   u.Username,
		Gender:     u.Gender,
		Age:        Age(u.DateOfBirth, now),
		KnownAs:    u.KnownAs,
		Created:    u.Created,
		LastActive: u.LastActive,
		City:       u.City,
		Country:    u.Country,
		PhotoURL:   MainPhotoURL(u.Photos),
	}
}

// UserForDetailed projects u with its photos.
func UserForDetailed(u models.User, now time.Time) models.UserForDetailed {
	photos := make([]models.PhotoForDetailed, len(u.Photos))
	for i, p := range u.Photos {
		photos[i] = Photo(p)
	}
	return models.UserForDetailed{
		UserForList:  UserForList(u, now),
		Introduction: u.Introduction,
		LookingFor:   u.LookingFor,
		Interests:    u.Interests,
		Photos:       photos,
	}
}

func Photo(p models.Photo) models.PhotoForDetailed {
	return models.PhotoForDetailed{
		ID:          p.ID,
		URL:         p.URL,
		Description: p.Description,
		DateAdded:   p.DateAdded,
		IsMain:      p.IsMain,
	}
}

// Message projects m; each side's photo URL is resolved independently.
func Message(m models.Message) models.MessageToReturn {
	return models.MessageToReturn{
		ID:                m.ID,
		SenderID:          m.SenderID,
		SenderKnownAs:     m.Sender.KnownAs,
		SenderPhotoURL:    MainPhotoURL(m.Sender.Photos),
		RecipientID:       m.RecipientID,
		RecipientKnownAs:  m.Recipient.KnownAs,
		RecipientPhotoURL: MainPhotoURL(m.Recipient.Photos),
		Content:           m.Content,
		IsRead:            m.IsRead,
		DateRead:          m.DateRead,
		MessageSent:       m.MessageSent,
	}
}

// Messages projects a thread, keeping its order.
func Messages(ms []models.Message) []models.MessageToReturn {
	out := make([]models.MessageToReturn, len(ms))
	for i, m := range ms {
		out[i] = Message(m)
	}
	return out
}
