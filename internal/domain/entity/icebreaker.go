package entity

import "time"

// TopicType describes what kind of entries an icebreaker asks for.
type TopicType string

const (
	TopicPhoto TopicType = "photo"
	TopicText  TopicType = "text"
	TopicMixed TopicType = "mixed"
)

// String returns the string representation of the TopicType.
func (t TopicType) String() string {
	return string(t)
}

// IsValid checks if the TopicType is a valid value.
func (t TopicType) IsValid() bool {
	switch t {
	case TopicPhoto, TopicText, TopicMixed:
		return true
	default:
		return false
	}
}

// Icebreaker is a discussion prompt answered by one or more entries.
//
// InteractionCount always equals the sum of LikeCount plus the number of
// comments over Entries. The store maintains it incrementally.
type Icebreaker struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	TopicType        TopicType `json:"topic_type"`
	AuthorID         string    `json:"author_id"`
	CreatedAt        time.Time `json:"created_at"`
	InteractionCount int       `json:"interaction_count"`
	Entries          []*Entry  `json:"entries"` // Newest first.
}

// Interactions returns the interaction count recomputed from the entries.
func (i *Icebreaker) Interactions() int {
	total := 0
	for _, e := range i.Entries {
		total += e.Interactions()
	}

	return total
}

// Clone returns a deep copy of the icebreaker including its entries.
func (i *Icebreaker) Clone() *Icebreaker {
	c := *i
	if i.Entries != nil {
		c.Entries = make([]*Entry, len(i.Entries))
		for idx, e := range i.Entries {
			c.Entries[idx] = e.Clone()
		}
	}

	return &c
}
