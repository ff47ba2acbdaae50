package dailyplan

// Task is one bite-sized micro-task in a day's study plan.
type Task struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
	Type        string `json:"type"`
}
