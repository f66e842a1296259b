package studies

type TopicStatus string

const (
	TopicToStudy   TopicStatus = "to_study"
	TopicReviewing TopicStatus = "reviewing"
	TopicDone      TopicStatus = "done"
)

func (s TopicStatus) Valid() bool {
	switch s {
	case TopicToStudy, TopicReviewing, TopicDone:
		return true
	default:
		return false
	}
}

type BookStatus string

const (
	BookReading  BookStatus = "reading"
	BookFinished BookStatus = "finished"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Topic struct {
	ID      string      `json:"id"`
	Subject string      `json:"subject"`
	Topic   string      `json:"topic"`
	Status  TopicStatus `json:"status"`
}

// Book ratings stay 0 until the book is rated.
type Book struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status BookStatus `json:"status"`
	Rating int        `json:"rating"`
}

type AddTopicInput struct {
	Subject string
	Topic   string
}

type Progress struct {
	Progress int `json:"progress"`
	Done     int `json:"done"`
	Total    int `json:"total"`
	Read     int `json:"read"`
}
