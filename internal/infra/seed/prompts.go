package seed

// Prompt is a reusable icebreaker template.
type Prompt struct {
	Title       string
	Description string
}

// DefaultPrompts is the prompt pool seeded icebreakers are drawn from.
var DefaultPrompts = []Prompt{
	{Title: "Desk Snapshot", Description: "Share a photo of your current workspace setup. What's your favorite item on your desk?"},
	{Title: "Dream Vacation", Description: "If you could teleport anywhere for a week, where would you go and why?"},
	{Title: "Hidden Talent", Description: "What's a surprising skill or talent you have that most people don't know about?"},
	{Title: "Favorite Comfort Food", Description: "What's your go-to comfort food and a quick story about why it's special to you?"},
	{Title: "Throwback Photo", Description: "Post a photo of yourself from a memorable past event or trip. No context needed initially!"},
	{Title: "Two Truths and a Lie", Description: "Share two true statements and one lie about yourself. Let others guess!"},
	{Title: "Current Read/Watch", Description: "What book are you currently reading or show are you binge-watching?"},
}
