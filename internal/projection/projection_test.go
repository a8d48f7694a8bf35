package projection

import (
	"testing"
	"time"

	"github.com/anonto42/nano-dating/backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	now := date(2024, time.June, 15)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday today", date(1994, time.June, 15), 30},
		{"birthday tomorrow", date(1994, time.June, 16), 29},
		{"birthday yesterday", date(1994, time.June, 14), 30},
		{"later month", date(1994, time.December, 1), 29},
		{"earlier month", date(1994, time.January, 31), 30},
		{"newborn", date(2024, time.June, 15), 0},
	}
	for _, c := range cases {
		if got := Age(c.dob, now); got != c.want {
			t.Fatalf("%s: Age(%s) = %d, want %d", c.name, c.dob.Format(time.DateOnly), got, c.want)
		}
	}
}

func TestAgeExactYearsAndOneDayShort(t *testing.T) {
	now := date(2025, time.March, 10)
	for n := 1; n <= 80; n++ {
		exact := now.AddDate(-n, 0, 0)
		if got := Age(exact, now); got != n {
			t.Fatalf("dob %s: got %d, want %d", exact.Format(time.DateOnly), got, n)
		}
		notYet := exact.AddDate(0, 0, 1)
		if got := Age(notYet, now); got != n-1 {
			t.Fatalf("dob %s: got %d, want %d", notYet.Format(time.DateOnly), got, n-1)
		}
	}
}

func TestMainPhotoURL(t *testing.T) {
	if got := MainPhotoURL(nil); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
	photos := []models.Photo{
		{ID: 1, URL: "https://img/1"},
		{ID: 2, URL: "https://img/2", IsMain: true},
		{ID: 3, URL: "https://img/3"},
	}
	if got := MainPhotoURL(photos); got != "https://img/2" {
		t.Fatalf("got %q", got)
	}
	if got := MainPhotoURL(photos[:1]); got != "" {
		t.Fatalf("expected no main photo, got %q", got)
	}
}

func TestUserForListWithoutPhotos(t *testing.T) {
	u := models.User{ID: 7, Username: "ann", KnownAs: "Ann", Gender: "female", DateOfBirth: date(1990, time.July, 1)}

	view := UserForList(u, date(2024, time.June, 30))
	if view.PhotoURL != "" {
		t.Fatalf("expected empty photo url, got %q", view.PhotoURL)
	}
	if view.Age != 33 {
		t.Fatalf("expected age 33, got %d", view.Age)
	}
	if view.ID != 7 || view.KnownAs != "Ann" {
		t.Fatalf("scalar fields not copied: %+v", view)
	}
}

func TestUserForDetailed(t *testing.T) {
	u := models.User{
		ID:          3,
		DateOfBirth: date(2000, time.January, 1),
		Interests:   "hiking",
		Photos: []models.Photo{
			{ID: 10, URL: "https://img/a", IsMain: true},
			{ID: 11, URL: "https://img/b"},
		},
	}

	view := UserForDetailed(u, date(2024, time.January, 1))
	if view.PhotoURL != "https://img/a" || view.Age != 24 {
		t.Fatalf("unexpected list fields: %+v", view.UserForList)
	}
	if len(view.Photos) != 2 || view.Photos[1].ID != 11 {
		t.Fatalf("unexpected photos: %+v", view.Photos)
	}
	if view.Interests != "hiking" {
		t.Fatalf("interests not copied")
	}
}

func TestMessageResolvesEachSide(t *testing.T) {
	m := models.Message{
		ID:          1,
		SenderID:    1,
		Sender:      models.User{ID: 1, KnownAs: "A", Photos: []models.Photo{{URL: "https://img/a", IsMain: true}}},
		RecipientID: 2,
		Recipient:   models.User{ID: 2, KnownAs: "B"},
		Content:     "hi",
	}

	view := Message(m)
	if view.SenderPhotoURL != "https://img/a" {
		t.Fatalf("sender photo: %q", view.SenderPhotoURL)
	}
	if view.RecipientPhotoURL != "" {
		t.Fatalf("recipient photo should be empty, got %q", view.RecipientPhotoURL)
	}
	if view.SenderKnownAs != "A" || view.RecipientKnownAs != "B" || view.Content != "hi" {
		t.Fatalf("unexpected view: %+v", view)
	}
}
