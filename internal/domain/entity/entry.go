package entity

import "time"

// Entry is a user's response to an icebreaker, made of text and/or an image reference.
type Entry struct {
	ID           string     `json:"id"`
	IcebreakerID string     `json:"icebreaker_id"`
	AuthorID     string     `json:"author_id"`
	Text         string     `json:"text,omitempty"`
	ContentURL   string     `json:"content_url,omitempty"` // Opaque image reference.
	CreatedAt    time.Time  `json:"created_at"`
	LikeCount    int        `json:"like_count"`
	Comments     []*Comment `json:"comments"` // Newest first at insertion.
}

// Interactions returns the likes plus comments this entry contributes to its icebreaker.
func (e *Entry) Interactions() int {
	return e.LikeCount + len(e.Comments)
}

// Clone returns a deep copy of the entry including its comments.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.Comments != nil {
		c.Comments = make([]*Comment, len(e.Comments))
		for idx, cm := range e.Comments {
			cp := *cm
			c.Comments[idx] = &cp
		}
	}

	return &c
}
