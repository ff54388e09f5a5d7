package mailtime

import (
	"mailtime-service/internal/app/models"
	"mailtime-service/internal/pkg/dto/requests"
	"mailtime-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
)

// Per-user tier points.
const (
	pointsBusinessHours = 4
	pointsNaive         = 1
)

// Checker scores a candidate submission against the two ground truths.
type Checker struct{}

func NewChecker() Checker {
	return Checker{}
}

// Convert parses a raw candidate response body.
func (c Checker) Convert(raw []byte) (requests.Submission, error) {
	var submission requests.Submission
	if err := json.Unmarshal(raw, &submission); err != nil {
		return requests.Submission{}, exceptions.ErrTeamResponseDecoding(err)
	}
	return submission, nil
}

// Check computes both ground truths for the input and assigns every user a
// tier: 4 points for matching the business-hours average, 1 for the naive
// average, 0 otherwise. Missing or malformed entries score 0 for that user
// only. The overall score is five times the floored mean of tier points;
// the message names the mismatched users.
func (c Checker) Check(input models.Input, submission requests.Submission) (models.ChallengeResult, error) {
	businessHours, err := NewSolver(BusinessHoursSegments).Solve(input)
	if err != nil {
		return models.ChallengeResult{}, err
	}
	naive, err := NewSolver(NaiveSegments).Solve(input)
	if err != nil {
		return models.ChallengeResult{}, err
	}

	if len(input.Users) == 0 {
		return models.ChallengeResult{}, nil
	}

	var totalPoints int
	var mismatched []string
	for _, user := range input.Users {
		reported, ok := submission.ReportedSeconds(user.Name)
		switch {
		case ok && reported == businessHours.Response[user.Name]:
			totalPoints += pointsBusinessHours
		case ok && reported == naive.Response[user.Name]:
			totalPoints += pointsNaive
		default:
			mismatched = append(mismatched, user.Name)
		}
	}

	return models.ChallengeResult{
		Score:   5 * (totalPoints / len(input.Users)),
		Message: strings.Join(mismatched, ","),
	}, nil
}
