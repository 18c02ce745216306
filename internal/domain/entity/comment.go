package entity

import "time"

// Comment is a text reply attached to an entry.
type Comment struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entry_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
