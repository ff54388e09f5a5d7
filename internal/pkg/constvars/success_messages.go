package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Solver messages
	SolveInputSuccess      = "input solved successfully"
	GenerateExampleSuccess = "example generated successfully"

	// Evaluation messages
	EvaluationAcceptedSuccess = "evaluation accepted"
	ResultAcceptedSuccess     = "result accepted"
	GetRunSuccess             = "get evaluation run successfully"
)
