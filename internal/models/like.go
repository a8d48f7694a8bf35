package models

import "time"

// Like is a directed edge: LikerID likes LikeeID. The composite key allows one edge per ordered pair.
type Like struct {
	LikerID   uint      `json:"liker_id" gorm:"primaryKey;autoIncrement:false"`
	LikeeID   uint      `json:"likee_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeDirection selects which side of the like graph to read.
type LikeDirection int

const (
	// Likers are the users who like the subject.
	Likers LikeDirection = iota
	// Likees are the users the subject likes.
	Likees
)

func (d LikeDirection) String() string {
	switch d {
	case Likers:
		return "likers"
	case Likees:
		return "likees"
	default:
		return "unknown"
	}
}

// LikeSet holds both directions of a user's like edges, loaded together.
type LikeSet struct {
	UserID uint
	likers map[uint]struct{}
	likees map[uint]struct{}
}

// NewLikeSet indexes the edges touching userID. Edges not touching userID are ignored.
func NewLikeSet(userID uint, edges []Like) *LikeSet {
	s := &LikeSet{
		UserID: userID,
		likers: make(map[uint]struct{}),
		likees: make(map[uint]struct{}),
	}
	for _, e := range edges {
		if e.LikeeID == userID {
			s.likers[e.LikerID] = struct{}{}
		}
		if e.LikerID == userID {
			s.likees[e.LikeeID] = struct{}{}
		}
	}
	return s
}

// IDs returns the user ids connected in the given direction, in no particular order.
func (s *LikeSet) IDs(direction LikeDirection) []uint {
	src := s.likers
	if direction == Likees {
		src = s.likees
	}
	ids := make([]uint, 0, len(src))
	for id := range src {
		ids = append(ids, id)
	}
	return ids
}

// Has reports whether id is connected to the subject in the given direction.
func (s *LikeSet) Has(direction LikeDirection, id uint) bool {
	if direction == Likees {
		_, ok := s.likees[id]
		return ok
	}
	_, ok := s.likers[id]
	return ok
}
