package models

// Question is a question asked on an event page. Response stays nil until
// the event owner answers; deleting a question discards its response with it.
type Question struct {
	ID       int64   `json:"id"`
	Question string  `json:"question"`
	Response *string `json:"response"`
	Owner    Owner   `json:"owner"`
}

// Answered reports whether the event owner has responded.
func (q *Question) Answered() bool {
	return q.Response != nil && *q.Response != ""
}
