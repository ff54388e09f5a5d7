package responses

import "mailtime-service/internal/app/models"

// Example pairs a generated input with the output a correct solver would
// produce for it.
type Example struct {
	Input  models.Input  `json:"input"`
	Output models.Output `json:"output"`
}
