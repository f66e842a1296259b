package reminders

// Reminder is a dashboard reminder. Work tasks share the same shape.
type Reminder struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Datetime  *string `json:"datetime,omitempty"`
}

type AddInput struct {
	Text     string
	Datetime *string
}

func ReminderID(r Reminder) string {
	return r.ID
}
