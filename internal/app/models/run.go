package models

import "time"

type LevelResult struct {
	Level   string `json:"level" bson:"level"`
	Score   int    `json:"score" bson:"score"`
	Message string `json:"message,omitempty" bson:"message,omitempty"`
}

// EvaluationRun is the persisted record of one full evaluation of a team.
type EvaluationRun struct {
	RunID       string        `json:"runId" bson:"runId"`
	TeamURL     string        `json:"teamUrl" bson:"teamUrl"`
	Score       int           `json:"score" bson:"score"`
	Message     string        `json:"message,omitempty" bson:"message,omitempty"`
	Levels      []LevelResult `json:"levels" bson:"levels"`
	StartedAt   time.Time     `json:"startedAt" bson:"startedAt"`
	CompletedAt time.Time     `json:"completedAt" bson:"completedAt"`
}
