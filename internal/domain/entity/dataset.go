package entity

// Dataset is a consistent view over the four activity collections.
//
// Entries and Comments are the flat collections in insertion order. Each
// icebreaker's Entries and each entry's Comments hold the same records.
type Dataset struct {
	Users       []*User
	Icebreakers []*Icebreaker
	Entries     []*Entry
	Comments    []*Comment
}
