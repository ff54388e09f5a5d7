package models

import "time"

type User struct {
	Name        string      `json:"name" bson:"name"`
	OfficeHours OfficeHours `json:"officeHours" bson:"officeHours"`
}

type Email struct {
	Subject  string    `json:"subject" bson:"subject"`
	Sender   string    `json:"sender" bson:"sender"`
	Receiver string    `json:"receiver" bson:"receiver"`
	TimeSent time.Time `json:"timeSent" bson:"timeSent"`
}

type Input struct {
	Emails []Email `json:"emails" bson:"emails"`
	Users  []User  `json:"users" bson:"users"`
}

// Output maps user name to average response seconds.
type Output struct {
	Response map[string]int64 `json:"response" bson:"response"`
}

type ChallengeResult struct {
	Score   int    `json:"score" bson:"score"`
	Message string `json:"message" bson:"message"`
}

// Plus merges two results the way level scores accumulate: scores add,
// messages concatenate.
func (r ChallengeResult) Plus(other ChallengeResult) ChallengeResult {
	message := r.Message
	if message != "" && other.Message != "" {
		message = message + "\n" + other.Message
	} else if other.Message != "" {
		message = other.Message
	}
	return ChallengeResult{Score: r.Score + other.Score, Message: message}
}
