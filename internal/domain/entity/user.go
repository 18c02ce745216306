// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a participant of the icebreaker community.
// Users are created once at seed time and never modified afterwards.
type User struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatar_url"`
	Role          Role   `json:"role"`
	IceLevel      int    `json:"ice_level"`                // 0 is fully melted, 100 is fully frozen.
	ActivityScore *int   `json:"activity_score,omitempty"` // Static seeded score used for leaderboards.
}

// Score returns the activity score, treating an unset score as zero.
func (u *User) Score() int {
	if u.ActivityScore == nil {
		return 0
	}

	return *u.ActivityScore
}

// Clone returns a copy of the user that shares no memory with the receiver.
func (u *User) Clone() *User {
	c := *u
	if u.ActivityScore != nil {
		score := *u.ActivityScore
		c.ActivityScore = &score
	}

	return &c
}
