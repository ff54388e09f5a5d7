package requests

type Evaluation struct {
	RunID       string `json:"runId" validate:"required"`
	TeamURL     string `json:"teamUrl" validate:"required,url"`
	CallbackURL string `json:"callbackUrl" validate:"required,url"`
}

type EvaluationResult struct {
	RunID   string `json:"runId" validate:"required"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}
